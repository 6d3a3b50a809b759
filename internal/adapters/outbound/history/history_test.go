package history_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/openkraft/ciusage/internal/adapters/outbound/history"
	"github.com/openkraft/ciusage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.RunEntry{
		RunID:     "0b7c6f1e-7d0c-4c3e-9d55-2f1f3b7c1a00",
		Timestamp: time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
		Processed: 4,
		Skipped:   2,
		TotalGB:   2561.5,
		Output:    filepath.Join(dir, "collectinfo_license_usage.xlsx"),
	}

	require.NoError(t, h.Save(dir, entry))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 4, entries[0].Processed)
	assert.Equal(t, 2561.5, entries[0].TotalGB)
	assert.True(t, entry.Timestamp.Equal(entries[0].Timestamp))
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{RunID: "r1", Processed: 1}))
	require.NoError(t, h.Save(dir, domain.RunEntry{RunID: "r2", Processed: 3}))
	require.NoError(t, h.Save(dir, domain.RunEntry{RunID: "r3", Processed: 5}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "r1", entries[0].RunID)
	assert.Equal(t, 5, entries[2].Processed)
}

func TestHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested")
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{RunID: "r1"}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
