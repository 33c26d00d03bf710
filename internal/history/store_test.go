package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "wlsync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	started := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	err := store.Record(Run{
		RunID:          "run-1",
		StartedAt:      started,
		FinishedAt:     started.Add(3 * time.Second),
		Updated:        2,
		Unmatched:      1,
		AlreadyCorrect: 4,
	})
	require.NoError(t, err)

	runs, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, 2, got.Updated)
	assert.Equal(t, 1, got.Unmatched)
	assert.Equal(t, 4, got.AlreadyCorrect)
	assert.Empty(t, got.Error)
	assert.True(t, got.StartedAt.Equal(started), "started_at = %v, want %v", got.StartedAt, started)
}

func TestRecent_NewestFirstAndLimited(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := store.Record(Run{
			RunID:      string(rune('a' + i)),
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + time.Second),
		})
		require.NoError(t, err)
	}

	runs, err := store.Recent(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "e", runs[0].RunID)
	assert.Equal(t, "d", runs[1].RunID)
	assert.Equal(t, "c", runs[2].RunID)
}

func TestRecord_AbortedPass(t *testing.T) {
	store := openTestStore(t)

	err := store.Record(Run{
		RunID:      "run-err",
		StartedAt:  time.Now().UTC(),
		FinishedAt: time.Now().UTC(),
		Error:      "fetch watchlist: plex down",
	})
	require.NoError(t, err)

	runs, err := store.Recent(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "fetch watchlist: plex down", runs[0].Error)
	assert.Zero(t, runs[0].Updated)
}

func TestRecent_Empty(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "wlsync.db")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
