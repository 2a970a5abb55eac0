package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cardsync/internal/model"
)

// Sink writes one catalog snapshot per run, named by the run's UTC start
// time. The snapshot is taken before any price is mutated; a failure here
// aborts the run.
type Sink struct {
	Dir string
}

func (s *Sink) Save(products []model.Product) (string, error) {
	b, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return "", fmt.Errorf("backup: marshal catalog: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("backup: create %s: %w", s.Dir, err)
	}

	name := "catalog-" + time.Now().UTC().Format("20060102T150405Z") + ".json"
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("backup: write %s: %w", path, err)
	}

	return path, nil
}
