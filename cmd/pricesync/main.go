package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"cardsync/internal/backup"
	"cardsync/internal/config"
	"cardsync/internal/currency"
	"cardsync/internal/db"
	"cardsync/internal/observability"
	"cardsync/internal/reconcile"
	"cardsync/internal/repository"
	"cardsync/internal/scrape"
	"cardsync/internal/shop"
)

// go run cmd/pricesync/main.go
// go run cmd/pricesync/main.go -dry-run
func main() {
	dryRun := flag.Bool("dry-run", false, "compute price decisions without writing updates")
	flag.Parse()

	cfg := config.Load()
	if cfg.ShopAPIToken == "" {
		log.Fatal("SHOP_API_TOKEN is required")
	}

	observability.Start(cfg.MetricsPort)

	ctx := context.Background()
	started := time.Now().UTC()
	runID := uuid.New().String()

	client := shop.NewClient(cfg.ShopAPIURL, cfg.ShopAPIToken)
	products, err := client.GetProducts(ctx)
	if err != nil {
		log.Fatalf("Fetching catalog: %v", err)
	}
	log.Printf("Fetched %d products", len(products))

	sink := &backup.Sink{Dir: cfg.BackupDir}
	backupPath, err := sink.Save(products)
	if err != nil {
		log.Fatalf("Backing up catalog: %v", err)
	}
	log.Printf("Catalog backed up to %s", backupPath)

	var cache *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("Ignoring REDIS_URL: %v", err)
		} else {
			cache = redis.NewClient(opt)
		}
	}

	var recorder reconcile.Recorder
	var runRepo *repository.RunRepository
	if cfg.DatabaseURL != "" {
		sqlDB, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Printf("History disabled, database unavailable: %v", err)
		} else {
			pool, err := db.NewPool(ctx, cfg.DatabaseURL)
			if err != nil {
				log.Printf("History disabled, pool unavailable: %v", err)
			} else {
				runRepo = &repository.RunRepository{DB: sqlDB}
				recorder = &repository.DecisionRepository{DB: pool, RunID: runID}
				defer pool.Close()
			}
		}
	}

	engine := &reconcile.Engine{
		Source:    scrape.NewSource(cfg.PriceSourceURL),
		Converter: currency.NewConverter(cfg.RatesAPIURL, cache),
		Writer:    shop.NewWriter(cfg.ShopAPIURL, cfg.ShopAPIToken, cfg.TargetCurrency),
		Recorder:  recorder,
		From:      cfg.ReferenceCurrency,
		To:        cfg.TargetCurrency,
		DryRun:    *dryRun,
	}

	sum := engine.Reconcile(ctx, products)
	log.Printf("Sync finished in %s: %d products, %d updated, %d unchanged, %d without price, %d skipped, %d write failures",
		time.Since(started).Round(time.Second), sum.Products, sum.Updated, sum.Unchanged, sum.Missed, sum.Skipped, sum.WriteFailures)

	if runRepo != nil {
		err := runRepo.Save(repository.Run{
			ID:            runID,
			StartedAt:     started,
			FinishedAt:    time.Now().UTC(),
			Products:      sum.Products,
			Updated:       sum.Updated,
			Unchanged:     sum.Unchanged,
			Missed:        sum.Missed,
			WriteFailures: sum.WriteFailures,
			BackupPath:    backupPath,
		})
		if err != nil {
			log.Printf("Saving run summary: %v", err)
		}
	}
}
