package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/julianlopez/vainilla-catalog/internal/core"
	"github.com/julianlopez/vainilla-catalog/internal/platform/config"
	"github.com/julianlopez/vainilla-catalog/internal/platform/logging"
	"github.com/julianlopez/vainilla-catalog/internal/store/mongo"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Connect to Mongo
	client, err := mongo.NewClient(cfg)
	if err != nil {
		log.Error("failed to connect to MongoDB", "err", err)
		return
	}
	defer client.Close(ctx)

	db := client.DB
	productRepo := mongo.NewProductRepo(db, 5*time.Second)
	couponRepo := mongo.NewCouponRepo(db, 5*time.Second)

	log.Info("seeding catalog")
	seedProducts(ctx, log, productRepo)
	seedCoupons(ctx, log, couponRepo)
	log.Info("done seeding")
}

func seedProducts(ctx context.Context, log *slog.Logger, repo *mongo.ProductRepoMongo) {
	products := []core.Product{
		{Title: "Logitech MX Master 3S", Price: 99.99, Category: "electronics"},
		{Title: "Mechanical Keyboard TKL", Price: 129.00, Category: "electronics"},
		{Title: "Stanley Claw Hammer", Price: 18.50, Category: "tools"},
		{Title: "Cordless Drill 18V", Price: 89.90, Category: "tools"},
		{Title: "Colombian Roast Coffee 1kg", Price: 15.25, Category: "grocery"},
		{Title: "Green Tea Sampler", Price: 9.75, Category: "grocery"},
	}
	for _, p := range products {
		if _, err := repo.Insert(ctx, p); err != nil {
			log.Warn("failed to seed product", "title", p.Title, "err", err)
		}
	}
}

func seedCoupons(ctx context.Context, log *slog.Logger, repo *mongo.CouponRepoMongo) {
	coupons := []core.Coupon{
		{Code: "SAVE10", Discount: 10},
		{Code: "WELCOME5", Discount: 5},
		{Code: "BLACKFRIDAY", Discount: 25},
	}
	for _, c := range coupons {
		if _, err := repo.Insert(ctx, c); err != nil {
			log.Warn("failed to seed coupon", "code", c.Code, "err", err)
		}
	}
}
