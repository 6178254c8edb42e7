// Package store persists workout plans: the current plan as JSON, the run
// history in SQLite, and a watcher that reloads the plan file on change.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"chiseled/internal/profile"
)

// PlanFileName is the on-disk name of the current plan.
const PlanFileName = "workout_plan.json"

// Store handles the current-plan JSON file.
type Store struct {
	dataDir string
	logger  *zap.Logger
}

// New creates a Store rooted at dataDir.
func New(dataDir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dataDir: dataDir, logger: logger}
}

// DataDir returns the directory the store persists into.
func (s *Store) DataDir() string { return s.dataDir }

// PlanPath returns the primary plan file location.
func (s *Store) PlanPath() string {
	return filepath.Join(s.dataDir, PlanFileName)
}

// SavePlan writes rec as indented JSON to the data directory. When that
// fails (unwritable dir, for example) it falls back to the current working
// directory so the plan is never silently lost.
func (s *Store) SavePlan(rec profile.AnswerRecord) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal plan: %w", err)
	}

	path := s.PlanPath()
	if err := os.MkdirAll(s.dataDir, 0755); err == nil {
		err = os.WriteFile(path, data, 0644)
	}
	if err == nil {
		s.logger.Info("plan saved", zap.String("path", path))
		return path, nil
	}

	s.logger.Warn("saving to data dir failed, falling back to working directory",
		zap.String("path", path),
		zap.Error(err))
	fallback := PlanFileName
	if err := os.WriteFile(fallback, data, 0644); err != nil {
		return "", fmt.Errorf("save plan: %w", err)
	}
	return fallback, nil
}

// LoadPlan reads the saved plan. A missing file returns (nil, nil).
func (s *Store) LoadPlan() (*profile.AnswerRecord, error) {
	data, err := os.ReadFile(s.PlanPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var rec profile.AnswerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse plan file: %w", err)
	}
	return &rec, nil
}
