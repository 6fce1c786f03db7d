package override

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (shift.OverrideStore, string) {
	t.Helper()
	dir := t.TempDir()
	kv, err := kvstore.New(dir)
	require.NoError(t, err)
	return NewStore(kv, slog.New(slog.NewTextHandler(io.Discard, nil))), dir
}

func TestStore_LoadEmptyWhenMissing(t *testing.T) {
	store, _ := newTestStore(t)
	entries := store.Load()
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestStore_LoadEmptyWhenCorrupt(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manual_entries.json"), []byte("###"), 0644))

	entries := store.Load()
	assert.Empty(t, entries)
}

func TestStore_PutLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	day := shift.Day{TotalHours: 6, OrdinaryHours: 6}
	require.NoError(t, store.Put("2025-03-02", day))

	entries := store.Load()
	require.Len(t, entries, 1)
	got := entries["2025-03-02"]
	assert.Equal(t, "2025-03-02", got.Date)
	assert.Equal(t, shift.SourceManual, got.Source)
	assert.Equal(t, 6.0, got.TotalHours)
}

func TestStore_PutRejectsEmptyDate(t *testing.T) {
	store, _ := newTestStore(t)
	err := store.Put("", shift.Day{})
	assert.ErrorIs(t, err, shift.ErrEmptyDate)
}

func TestStore_LoadDropsBlankDateKeys(t *testing.T) {
	_, dir := newTestStore(t)
	kv, err := kvstore.New(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Put("manual_entries", map[string]shift.Day{
		"":           {TotalHours: 1},
		"2025-04-01": {TotalHours: 2},
	}))

	store := NewStore(kv, slog.New(slog.NewTextHandler(io.Discard, nil)))
	entries := store.Load()
	require.Len(t, entries, 1)
	assert.Contains(t, entries, "2025-04-01")
}

func TestStore_RemoveAndHas(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Put("2025-05-05", shift.Day{}))
	assert.True(t, store.Has("2025-05-05"))

	require.NoError(t, store.Remove("2025-05-05"))
	assert.False(t, store.Has("2025-05-05"))

	err := store.Remove("2025-05-05")
	assert.ErrorIs(t, err, shift.ErrDayNotFound)
}
