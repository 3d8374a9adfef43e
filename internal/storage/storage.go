package storage

import (
	"time"

	"ttest/internal/config"
	"ttest/internal/domain"
)

// Storage persists and loads the record of the last run (for `last` and `show`)
type Storage interface {
	Save(selectors []string, commands []domain.Command, results []domain.CommandResult, duration time.Duration) error
	Load() (*domain.RunRecord, error)
	// SaveRecord writes a complete record as is
	SaveRecord(record *domain.RunRecord) error
}

// JSONStorage stores the record in a JSON file under the configured output path
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
