package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ttest/internal/domain"
)

// Save builds a record from the planned commands and their results and writes it.
// Planned commands without a result are stored as skipped.
func (s *JSONStorage) Save(selectors []string, commands []domain.Command, results []domain.CommandResult, duration time.Duration) error {
	record := &domain.RunRecord{
		Selectors: selectors,
		Commands:  make([]domain.CommandRecord, 0, len(commands)),
		Duration:  duration.String(),
		Timestamp: time.Now().Format(time.RFC3339),
	}

	for i, command := range commands {
		entry := domain.CommandRecord{Adapter: command.Adapter, Command: command.Line}
		if i < len(results) {
			result := results[i]
			entry.ExitCode = result.ExitCode
			entry.Success = result.Success
			entry.DurationSeconds = result.Duration.Seconds()
			if result.Error != nil {
				entry.Error = result.Error.Error()
			}
		} else {
			entry.Skipped = true
		}
		record.Commands = append(record.Commands, entry)
	}

	return s.SaveRecord(record)
}

// Load reads the last run record from the configured JSON output file
func (s *JSONStorage) Load() (*domain.RunRecord, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read last run: %w", err)
	}
	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse last run: %w", err)
	}
	return &record, nil
}

// SaveRecord writes the record to the configured JSON file
func (s *JSONStorage) SaveRecord(record *domain.RunRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal last run: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write last run: %w", err)
	}
	return nil
}
