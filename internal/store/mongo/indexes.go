package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := ensureProductsIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure products indexes: %w", err)
	}
	if err := ensureCouponsIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure coupons indexes: %w", err)
	}
	return nil
}

func ensureProductsIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ColProducts)
	models := []mongo.IndexModel{
		// The catalog listing sorts by title.
		newIndex("title", 1, "products_title_asc", false),
		newIndex("category", 1, "products_category", false),
		newIndex("price", 1, "products_price", false),
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func ensureCouponsIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ColCoupons)
	models := []mongo.IndexModel{
		newIndex("code", 1, "coupons_code_unique", true),
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func newIndex(field string, asc int32, name string, unique bool) mongo.IndexModel {
	opts := options.Index().SetName(name)
	if unique {
		opts = opts.SetUnique(true)
	}
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: asc}},
		Options: opts,
	}
}
