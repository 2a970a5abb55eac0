package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"cardsync/internal/config"
	"cardsync/internal/db"
	"cardsync/internal/repository"
)

// go run cmd/report/main.go -runs=5 -decisions=50
func main() {
	runLimit := flag.Int("runs", 10, "number of recent runs to show")
	decisionLimit := flag.Int("decisions", 30, "number of recent price decisions to show")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for reporting")
	}

	ctx := context.Background()

	sqlDB, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Connecting to database: %v", err)
	}
	defer sqlDB.Close()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Connecting to database: %v", err)
	}
	defer pool.Close()

	runRepo := &repository.RunRepository{DB: sqlDB}
	runs, err := runRepo.ListRecent(*runLimit)
	if err != nil {
		log.Fatalf("Listing runs: %v", err)
	}

	fmt.Println("Recent runs:")
	for _, r := range runs {
		fmt.Printf("  %s  %s  products=%d updated=%d unchanged=%d missed=%d write_failures=%d backup=%s\n",
			r.StartedAt.Format("2006-01-02 15:04:05"), r.ID, r.Products, r.Updated, r.Unchanged, r.Missed, r.WriteFailures, r.BackupPath)
	}

	decRepo := &repository.DecisionRepository{DB: pool}
	decisions, err := decRepo.ListRecent(ctx, *decisionLimit)
	if err != nil {
		log.Fatalf("Listing decisions: %v", err)
	}

	fmt.Println("Recent decisions:")
	for _, d := range decisions {
		action := "unchanged"
		if d.Updated {
			action = "updated"
		}
		fmt.Printf("  %s %s/%s %s %.2f -> %.2f (%s)\n",
			action, d.ProductID, d.VariantID, d.Condition, d.OldAmount, d.NewAmount, d.RunID)
	}
}
