package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/julianlopez/vainilla-catalog/internal/core"
	transporthttp "github.com/julianlopez/vainilla-catalog/internal/http"
	"github.com/julianlopez/vainilla-catalog/internal/http/handlers"
	"github.com/julianlopez/vainilla-catalog/internal/http/health"
	"github.com/julianlopez/vainilla-catalog/internal/middleware"
	"github.com/julianlopez/vainilla-catalog/internal/platform/config"
	"github.com/julianlopez/vainilla-catalog/internal/platform/logging"
	"github.com/julianlopez/vainilla-catalog/internal/store/mongo"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("starting vainilla-catalog API", "addr", addr, "env", cfg.Env)

	// Connect to Mongo
	log.Info("connecting to MongoDB", "db", cfg.MongoDB)
	mongoClient, err := mongo.NewClient(cfg)
	if err != nil {
		log.Error("failed to connect to MongoDB", "err", err)
		os.Exit(1)
	}
	defer mongoClient.Close(context.Background())

	{
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := mongo.EnsureIndexes(ctx, mongoClient.DB); err != nil {
			cancel()
			log.Error("failed to ensure indexes", "err", err)
			os.Exit(1)
		}
		cancel()
	}

	opTimeout := time.Duration(cfg.MongoOpTimeoutMs) * time.Millisecond
	productRepo := mongo.NewProductRepo(mongoClient.DB, opTimeout)
	couponRepo := mongo.NewCouponRepo(mongoClient.DB, opTimeout)

	catalogSvc := core.NewCatalogService(productRepo)
	couponSvc := core.NewCouponService(couponRepo)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := transporthttp.NewRouter(transporthttp.Deps{
		Mounts: []handlers.Mountable{
			handlers.NewVersionHandler(log),
			handlers.NewProductHandler(catalogSvc, log),
			handlers.NewCouponHandler(couponSvc, log),
			health.New(log, mongoClient, opTimeout),
		},
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: time.Duration(cfg.HTTPRequestTimeoutSec) * time.Second,
		Metrics:        middleware.NewMetrics(registry),
		Registry:       registry,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTPReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPWriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPIdleTimeoutSec) * time.Second,
	}

	log.Info("server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}
