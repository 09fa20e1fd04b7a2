package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/julianlopez/vainilla-catalog/internal/core"
)

type CouponRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewCouponRepo(db *mongodrv.Database, opTimeout time.Duration) *CouponRepoMongo {
	return &CouponRepoMongo{
		coll:      db.Collection(ColCoupons),
		opTimeout: opTimeout,
	}
}

// Lists all coupons in no particular order.
func (r *CouponRepoMongo) List(ctx context.Context) ([]core.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("coupons.find: %w", err)
	}
	defer cur.Close(ctx)

	coupons := []core.Coupon{}
	for cur.Next(ctx) {
		var doc CouponDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("coupons.decode: %w", err)
		}
		coupons = append(coupons, fromCouponDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("coupons.cursor: %w", err)
	}
	return coupons, nil
}

// Insert stores a coupon and returns the generated id as a hex string.
func (r *CouponRepoMongo) Insert(ctx context.Context, c core.Coupon) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toCouponDoc(c))
	if err != nil {
		return "", fmt.Errorf("coupons.insertOne: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("coupons.insertOne: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetByCode matches the stored code exactly. Returns core.ErrNotFound if no
// coupon matches.
func (r *CouponRepoMongo) GetByCode(ctx context.Context, code string) (core.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var doc CouponDoc
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&doc); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.Coupon{}, core.ErrNotFound
		}
		return core.Coupon{}, fmt.Errorf("coupons.findOne: %w", err)
	}
	return fromCouponDoc(doc), nil
}

// Delete removes the coupon with the given id and returns the deleted count.
func (r *CouponRepoMongo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id, "coupon")
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("coupons.deleteOne: %w", err)
	}
	return res.DeletedCount, nil
}
