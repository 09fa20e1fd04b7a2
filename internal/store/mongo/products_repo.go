package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/julianlopez/vainilla-catalog/internal/core"
)

type ProductRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewProductRepo(db *mongodrv.Database, opTimeout time.Duration) *ProductRepoMongo {
	return &ProductRepoMongo{
		coll:      db.Collection(ColProducts),
		opTimeout: opTimeout,
	}
}

// Lists all products ordered by title. Returns an empty slice if none found.
func (r *ProductRepoMongo) List(ctx context.Context) ([]core.Product, error) {
	return r.find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
}

// Insert stores a product and returns the generated id as a hex string.
func (r *ProductRepoMongo) Insert(ctx context.Context, p core.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toProductDoc(p))
	if err != nil {
		return "", fmt.Errorf("products.insertOne: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("products.insertOne: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *ProductRepoMongo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("products.count: %w", err)
	}
	return n, nil
}

// SumPrices returns the sum of the price field across all products, 0 when
// the collection is empty.
func (r *ProductRepoMongo) SumPrices(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	pipeline := mongodrv.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("products.aggregate: %w", err)
	}
	defer cur.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("products.aggregate decode: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *ProductRepoMongo) ListByCategory(ctx context.Context, category string) ([]core.Product, error) {
	return r.find(ctx, bson.M{"category": category}, nil)
}

func (r *ProductRepoMongo) ListPriceBelow(ctx context.Context, amount float64) ([]core.Product, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$lt": amount}}, nil)
}

func (r *ProductRepoMongo) ListPriceAtLeast(ctx context.Context, amount float64) ([]core.Product, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$gte": amount}}, nil)
}

// DistinctCategories returns the distinct category values in driver order.
func (r *ProductRepoMongo) DistinctCategories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "category", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("products.distinct: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("products.distinct: non-string category %v", v)
		}
		categories = append(categories, s)
	}
	return categories, nil
}

// Update applies the patch fields to the document with the given id. There
// is no match signal: updating an absent id is a silent no-op.
func (r *ProductRepoMongo) Update(ctx context.Context, id string, patch core.ProductPatch) error {
	oid, err := parseID(id, "product")
	if err != nil {
		return err
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		// Keep the stored-lowercase invariant on updates too.
		set["category"] = strings.ToLower(*patch.Category)
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	if _, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("products.updateByID: %w", err)
	}
	return nil
}

// Delete removes the product with the given id and returns the deleted
// count (0 or 1).
func (r *ProductRepoMongo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id, "product")
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("products.deleteOne: %w", err)
	}
	return res.DeletedCount, nil
}

// GetByID returns core.ErrNotFound when no product matches.
func (r *ProductRepoMongo) GetByID(ctx context.Context, id string) (core.Product, error) {
	oid, err := parseID(id, "product")
	if err != nil {
		return core.Product{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var doc ProductDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.Product{}, core.ErrNotFound
		}
		return core.Product{}, fmt.Errorf("products.findOne: %w", err)
	}
	return fromProductDoc(doc), nil
}

func (r *ProductRepoMongo) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]core.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var cur *mongodrv.Cursor
	var err error
	if opts != nil {
		cur, err = r.coll.Find(ctx, filter, opts)
	} else {
		cur, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("products.find: %w", err)
	}
	defer cur.Close(ctx)

	products := []core.Product{}
	for cur.Next(ctx) {
		var doc ProductDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("products.decode: %w", err)
		}
		products = append(products, fromProductDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("products.cursor: %w", err)
	}
	return products, nil
}
