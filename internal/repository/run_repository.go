package repository

import (
	"database/sql"
	"time"
)

// Run is one pipeline invocation's summary, kept for audit alongside the
// on-disk catalog backup.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    time.Time
	Products      int
	Updated       int
	Unchanged     int
	Missed        int
	WriteFailures int
	BackupPath    string
}

type RunRepository struct {
	DB *sql.DB
}

func (r *RunRepository) Save(run Run) error {
	_, err := r.DB.Exec(`
		INSERT INTO sync_run
		(id, started_at, finished_at, products, updated, unchanged, missed, write_failures, backup_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, run.ID, run.StartedAt, run.FinishedAt, run.Products, run.Updated, run.Unchanged, run.Missed, run.WriteFailures, run.BackupPath)

	return err
}

func (r *RunRepository) ListRecent(limit int) ([]Run, error) {
	rows, err := r.DB.Query(`
		SELECT id, started_at, finished_at, products, updated, unchanged, missed, write_failures, backup_path
		FROM sync_run
		ORDER BY started_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.Products, &run.Updated, &run.Unchanged, &run.Missed, &run.WriteFailures, &run.BackupPath); err != nil {
			continue
		}
		runs = append(runs, run)
	}

	return runs, nil
}
