// Package server wires the reconciler, scheduler, and liveness endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/wlsync/internal/config"
	"github.com/vmunix/wlsync/internal/history"
	"github.com/vmunix/wlsync/internal/plex"
	"github.com/vmunix/wlsync/internal/radarr"
	"github.com/vmunix/wlsync/internal/reconcile"
)

const startupTimeout = 30 * time.Second

// Runner owns the process-lifetime services and drives reconciliation passes.
type Runner struct {
	cfg    *config.Config
	once   bool
	logger *slog.Logger
}

// NewRunner creates a runner. once selects single-shot mode: one pass, no
// liveness endpoint, exit code from the pass outcome.
func NewRunner(cfg *config.Config, once bool, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:    cfg,
		once:   once,
		logger: logger,
	}
}

// Run resolves the target profile, then either executes a single pass or
// runs the scheduler loop alongside the liveness endpoint until the context
// is canceled.
func (r *Runner) Run(ctx context.Context) error {
	plexClient := plex.NewClient(r.cfg.Plex.URL, r.cfg.Plex.Token, r.logger)
	radarrClient := radarr.NewClient(r.cfg.Radarr.URL, r.cfg.Radarr.APIKey, r.logger)

	// Fail fast: an ambiguous or absent target profile must never reach the
	// update path. Resolved once; restart to pick up renames.
	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	profiles, err := radarrClient.QualityProfiles(startupCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("resolve target profile: %w", err)
	}
	targetID, err := radarr.ResolveProfileID(profiles, r.cfg.Sync.TargetProfile)
	if err != nil {
		return err
	}
	r.logger.Info("resolved target profile", "name", r.cfg.Sync.TargetProfile, "id", targetID)

	reconciler := reconcile.New(plexClient, radarrClient, targetID, r.cfg.UpdateDelay(), r.logger)

	store, err := history.Open(r.cfg.Database.Path)
	if err != nil {
		r.logger.Warn("pass history disabled", "path", r.cfg.Database.Path, "error", err)
		store = nil
	} else {
		defer func() { _ = store.Close() }()
	}

	if r.once {
		return r.runPass(ctx, reconciler, store)
	}

	// The Radarr update path is read-modify-write on whole records, so two
	// daemons interleaving writes against the same instance can clobber each
	// other. Refuse to start a second one.
	lock := flock.New(filepath.Join(filepath.Dir(r.cfg.Database.Path), "wlsyncd.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return errors.New("another wlsyncd instance is already running")
	}
	defer func() { _ = lock.Unlock() }()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.serveHealth(ctx)
	})
	g.Go(func() error {
		return r.runScheduler(ctx, reconciler, store)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runScheduler executes a pass immediately, then on every tick. A failed or
// panicked pass is logged and the loop continues; the polling cadence is the
// retry mechanism.
func (r *Runner) runScheduler(ctx context.Context, reconciler *reconcile.Reconciler, store *history.Store) error {
	log := r.logger.With("component", "scheduler")
	interval := r.cfg.Interval()
	log.Info("scheduler started", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := r.runPass(ctx, reconciler, store); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("pass failed", "error", err)
		}

		select {
		case <-ctx.Done():
			log.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// runPass runs one reconciliation pass and records its outcome. A panic is
// contained here so a single bad pass cannot take the daemon down.
func (r *Runner) runPass(ctx context.Context, reconciler *reconcile.Reconciler, store *history.Store) (err error) {
	runID := uuid.NewString()
	started := time.Now()
	var res reconcile.Result

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("pass panicked: %v", p)
		}
		if store == nil {
			return
		}
		run := history.Run{
			RunID:          runID,
			StartedAt:      started,
			FinishedAt:     time.Now(),
			Updated:        res.Updated,
			Unmatched:      res.Unmatched,
			AlreadyCorrect: res.AlreadyCorrect,
		}
		if err != nil {
			run.Error = err.Error()
		}
		if recErr := store.Record(run); recErr != nil {
			r.logger.Warn("failed to record pass", "run_id", runID, "error", recErr)
		}
	}()

	r.logger.Debug("pass starting", "run_id", runID)
	res, err = reconciler.RunOnce(ctx)
	return err
}

// serveHealth runs the liveness endpoint until the context is canceled.
func (r *Runner) serveHealth(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", r.cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: logRequests(healthHandler(), r.logger.With("component", "health")),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	r.logger.Info("liveness endpoint listening", "addr", addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("health server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}
