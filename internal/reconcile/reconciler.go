// Package reconcile implements the watchlist-to-library reconciliation pass.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/wlsync/internal/plex"
	"github.com/vmunix/wlsync/internal/radarr"
)

//go:generate mockgen -source=reconciler.go -destination=mocks/mocks.go -package=mocks

// WatchlistSource fetches the desired items from the upstream watchlist.
type WatchlistSource interface {
	Watchlist(ctx context.Context) ([]plex.Item, error)
}

// Library fetches tracked movies and applies profile updates.
type Library interface {
	Movies(ctx context.Context) ([]radarr.Movie, error)
	UpdateQualityProfile(ctx context.Context, movieID int64, profileID int) error
}

// Result aggregates the outcome of one pass.
type Result struct {
	Updated        int
	Unmatched      int
	AlreadyCorrect int
}

// Reconciler runs the watchlist-to-library reconciliation.
type Reconciler struct {
	source          WatchlistSource
	library         Library
	targetProfileID int
	updateDelay     time.Duration
	log             *slog.Logger
}

// New creates a reconciler targeting the given quality profile id. The id is
// resolved once at startup and held for the process lifetime; restart to pick
// up upstream profile changes. updateDelay is the courtesy pause inserted
// after each write attempt.
func New(source WatchlistSource, library Library, targetProfileID int, updateDelay time.Duration, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{
		source:          source,
		library:         library,
		targetProfileID: targetProfileID,
		updateDelay:     updateDelay,
		log:             log.With("component", "reconciler"),
	}
}

// RunOnce executes a single reconciliation pass.
//
// An empty watchlist means "nothing to do", never "clear everything": it
// returns a zero Result without touching the library. Fetch failures for the
// watchlist or the library abort the pass with an error. A failed update of
// one movie is logged and skipped; partial success is the expected steady
// state, and the next scheduled pass is the retry mechanism.
func (r *Reconciler) RunOnce(ctx context.Context) (Result, error) {
	var res Result

	items, err := r.source.Watchlist(ctx)
	if err != nil {
		return res, fmt.Errorf("fetch watchlist: %w", err)
	}
	if len(items) == 0 {
		r.log.Info("watchlist empty, nothing to do")
		return res, nil
	}

	// One snapshot reused for every match; the library is not re-fetched per
	// watchlist item.
	movies, err := r.library.Movies(ctx)
	if err != nil {
		return res, fmt.Errorf("fetch library: %w", err)
	}

	r.log.Info("pass started", "watchlist", len(items), "library", len(movies))

	for _, item := range items {
		movie := Match(item, movies)
		if movie == nil {
			r.log.Warn("no library match", "title", item.Title, "year", item.Year)
			res.Unmatched++
			continue
		}

		if movie.QualityProfileID == r.targetProfileID {
			res.AlreadyCorrect++
			continue
		}

		if err := r.library.UpdateQualityProfile(ctx, movie.ID, r.targetProfileID); err != nil {
			r.log.Error("update failed",
				"title", movie.Title,
				"year", movie.Year,
				"movie_id", movie.ID,
				"error", err)
		} else {
			r.log.Info("updated quality profile",
				"title", movie.Title,
				"year", movie.Year,
				"movie_id", movie.ID,
				"profile_id", r.targetProfileID)
			res.Updated++
		}

		r.pause(ctx)
	}

	r.log.Info("pass complete",
		"updated", res.Updated,
		"unmatched", res.Unmatched,
		"already_correct", res.AlreadyCorrect)
	return res, nil
}

// pause rate-limits successive write attempts within a pass.
func (r *Reconciler) pause(ctx context.Context) {
	if r.updateDelay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(r.updateDelay):
	}
}
