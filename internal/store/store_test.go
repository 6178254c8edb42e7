package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chiseled/internal/profile"
)

func stampedRecord(t *testing.T) profile.AnswerRecord {
	t.Helper()
	rec := profile.Finalize(profile.RawAnswers{Goal: "Muscle gain"})
	rec.PlanText = "# Plan\n[Pushups] - 3x10"
	rec.Timestamp = "March 9, 2025 | 2:05pm"
	rec.Instructions = map[string]string{"Pushups": "1. Setup\nHands down."}
	return rec
}

func TestSaveAndLoadPlan(t *testing.T) {
	s := New(t.TempDir(), zap.NewNop())
	rec := stampedRecord(t)

	path, err := s.SavePlan(rec)
	require.NoError(t, err)
	assert.Equal(t, s.PlanPath(), path)

	loaded, err := s.LoadPlan()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, rec, *loaded)
}

func TestLoadPlanMissingFile(t *testing.T) {
	s := New(t.TempDir(), zap.NewNop())

	rec, err := s.LoadPlan()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSavePlanUsesHistoricalKeys(t *testing.T) {
	s := New(t.TempDir(), zap.NewNop())
	_, err := s.SavePlan(stampedRecord(t))
	require.NoError(t, err)

	data, err := os.ReadFile(s.PlanPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Workout Focus"`)
	assert.Contains(t, string(data), `"exercise_instructions"`)
}

func TestSavePlanFallsBackToWorkingDir(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)

	// A data dir path under a regular file cannot be created.
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	s := New(filepath.Join(blocker, "data"), zap.NewNop())
	path, err := s.SavePlan(stampedRecord(t))
	require.NoError(t, err)
	assert.Equal(t, PlanFileName, path)

	_, err = os.Stat(filepath.Join(tmp, PlanFileName))
	assert.NoError(t, err)
}
