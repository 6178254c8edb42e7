package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chiseled/internal/profile"
)

func TestHistoryRecordAndGet(t *testing.T) {
	h, err := OpenHistory(t.TempDir())
	require.NoError(t, err)
	defer h.Close()

	rec := stampedRecord(t)
	id, err := h.Record(rec)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entry, err := h.Get(id)
	require.NoError(t, err)
	assert.Equal(t, rec.Focus, entry.Focus)
	assert.Equal(t, "Muscle gain", entry.Goal)
	assert.Equal(t, rec, entry.Record)
}

func TestHistoryListNewestFirst(t *testing.T) {
	h, err := OpenHistory(t.TempDir())
	require.NoError(t, err)
	defer h.Close()

	first := profile.Finalize(profile.RawAnswers{Goal: "Endurance"})
	second := profile.Finalize(profile.RawAnswers{Goal: "Strength"})
	_, err = h.Record(first)
	require.NoError(t, err)
	_, err = h.Record(second)
	require.NoError(t, err)

	entries, err := h.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Strength", entries[0].Goal)
	assert.Equal(t, "Endurance", entries[1].Goal)
}

func TestHistoryGetUnknownID(t *testing.T) {
	h, err := OpenHistory(t.TempDir())
	require.NoError(t, err)
	defer h.Close()

	_, err = h.Get("nope")
	assert.Error(t, err)
}
