package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"cardsync/internal/model"
)

// DecisionRow is one recorded price comparison.
type DecisionRow struct {
	RunID     string
	ProductID string
	VariantID string
	Condition string
	OldAmount float64
	NewAmount float64
	Updated   bool
}

// DecisionRepository records every price decision of a run, updated or not,
// so price drift can be traced across runs.
type DecisionRepository struct {
	DB    *pgxpool.Pool
	RunID string
}

func (r *DecisionRepository) Record(ctx context.Context, d model.PriceDecision) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO price_decision
		(id, run_id, product_id, variant_id, condition, old_amount, new_amount, updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.New(), r.RunID, d.ProductID, d.VariantID, d.Condition, d.OldAmount, d.NewAmount, d.ShouldUpdate)

	return err
}

func (r *DecisionRepository) ListRecent(ctx context.Context, limit int) ([]DecisionRow, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT run_id, product_id, variant_id, condition, old_amount, new_amount, updated
		FROM price_decision
		ORDER BY recorded_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []DecisionRow
	for rows.Next() {
		var d DecisionRow
		if err := rows.Scan(&d.RunID, &d.ProductID, &d.VariantID, &d.Condition, &d.OldAmount, &d.NewAmount, &d.Updated); err != nil {
			continue
		}
		list = append(list, d)
	}

	return list, nil
}
