package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/wlsync/internal/config"
	"github.com/vmunix/wlsync/internal/server"
)

var version = "dev"

var (
	configPath      string
	runOnce         bool
	intervalMinutes int
	port            int
)

var rootCmd = &cobra.Command{
	Use:   "wlsyncd",
	Short: "Sync Plex watchlist movies to a Radarr quality profile",
	Long: `wlsyncd - Plex watchlist to Radarr profile sync

Watches the Plex account watchlist and moves matching movies in Radarr
onto a configured quality profile, on a fixed schedule or as a single
pass with --once.`,
	SilenceUsage: true,
	RunE:         runDaemon,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to config file")
	rootCmd.Flags().BoolVar(&runOnce, "once", false, "Run a single pass and exit")
	rootCmd.Flags().IntVar(&intervalMinutes, "interval", 0, "Poll interval in minutes (overrides config)")
	rootCmd.Flags().IntVar(&port, "port", 0, "Liveness endpoint port (overrides config)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("wlsyncd {{.Version}}\n")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.NewRunner(cfg, runOnce, logger).Run(ctx)
}

// loadConfig loads and validates the configuration with CLI flag overrides
// applied on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if intervalMinutes > 0 {
		cfg.Sync.IntervalMinutes = intervalMinutes
	}
	if port > 0 {
		cfg.Server.Port = port
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: configPath, Errors: errs}
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
