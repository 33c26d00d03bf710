package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/wlsync/internal/config"
	"github.com/vmunix/wlsync/internal/history"
	"github.com/vmunix/wlsync/internal/plex"
	"github.com/vmunix/wlsync/internal/radarr"
	"github.com/vmunix/wlsync/internal/reconcile"
	"github.com/vmunix/wlsync/internal/reconcile/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRunner(t *testing.T) *Runner {
	t.Helper()
	cfg := &config.Config{}
	cfg.Sync.IntervalMinutes = 60
	cfg.Server.Port = 0
	return NewRunner(cfg, false, testLogger())
}

func newMocks(t *testing.T) (*mocks.MockWatchlistSource, *mocks.MockLibrary, *reconcile.Reconciler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockWatchlistSource(ctrl)
	library := mocks.NewMockLibrary(ctrl)
	return source, library, reconcile.New(source, library, 5, 0, testLogger())
}

func TestRunPass_ContainsPanic(t *testing.T) {
	r := testRunner(t)
	source, _, rec := newMocks(t)

	source.EXPECT().Watchlist(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]plex.Item, error) {
			panic("boom")
		})

	err := r.runPass(context.Background(), rec, nil)
	require.Error(t, err, "panic must surface as a pass error, not kill the process")
	assert.Contains(t, err.Error(), "panicked")
}

func TestRunPass_RecordsOutcome(t *testing.T) {
	r := testRunner(t)
	source, library, rec := newMocks(t)

	store, err := history.Open(filepath.Join(t.TempDir(), "wlsync.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	source.EXPECT().Watchlist(gomock.Any()).Return([]plex.Item{
		{Title: "Dune", Year: 2021, IMDBID: "tt1160419"},
	}, nil)
	library.EXPECT().Movies(gomock.Any()).Return([]radarr.Movie{
		{ID: 7, Title: "Dune", Year: 2021, IMDBID: "tt1160419", QualityProfileID: 3},
	}, nil)
	library.EXPECT().UpdateQualityProfile(gomock.Any(), int64(7), 5).Return(nil)

	require.NoError(t, r.runPass(context.Background(), rec, store))

	runs, err := store.Recent(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Updated)
	assert.NotEmpty(t, runs[0].RunID)
	assert.Empty(t, runs[0].Error)
}

func TestRunPass_RecordsFailure(t *testing.T) {
	r := testRunner(t)
	source, _, rec := newMocks(t)

	store, err := history.Open(filepath.Join(t.TempDir(), "wlsync.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	source.EXPECT().Watchlist(gomock.Any()).Return(nil, errors.New("plex down"))

	require.Error(t, r.runPass(context.Background(), rec, store))

	runs, err := store.Recent(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Contains(t, runs[0].Error, "plex down")
	assert.Zero(t, runs[0].Updated)
}

func TestRunScheduler_SurvivesFailedPass(t *testing.T) {
	r := testRunner(t)
	source, _, rec := newMocks(t)

	ctx, cancel := context.WithCancel(context.Background())

	// First pass fails; the scheduler must log and keep going rather than
	// return. Cancel from inside the pass so the loop exits at the next
	// select instead of waiting out the ticker.
	source.EXPECT().Watchlist(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]plex.Item, error) {
			cancel()
			return nil, errors.New("plex down")
		})

	done := make(chan error, 1)
	go func() {
		done <- r.runScheduler(ctx, rec, nil)
	}()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}

func TestServeHealth_StopsOnCancel(t *testing.T) {
	r := testRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.serveHealth(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("health server did not shut down")
	}
}
