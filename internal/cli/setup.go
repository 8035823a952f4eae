// Package cli provides the command tree and common CLI initialization.
// The bootstrap helpers consolidate the patterns shared by cmd/hourtrack
// and cmd/hourtrack-reminder.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hourtrack/internal/backend"
	"hourtrack/internal/config"
	"hourtrack/internal/services"
	"hourtrack/internal/settings"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	slog.SetDefault(logger)
	return logger
}

func logLevel() slog.Level {
	// Command output goes to stdout; logs stay on stderr and default to
	// warnings so interactive use is not drowned in log lines.
	switch os.Getenv("HOURTRACK_LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// App bundles the wired-up collaborators a command needs.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Settings *settings.Repository
	Tracker  *services.TrackerService
}

// NewApp wires settings, record store and tracker service from config.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	repo, err := settings.NewRepository(cfg.SettingsDBPath)
	if err != nil {
		return nil, err
	}
	store, err := backend.NewStore(cfg, logger)
	if err != nil {
		repo.Close()
		return nil, err
	}
	return &App{
		Config:   cfg,
		Logger:   logger,
		Settings: repo,
		Tracker:  services.NewTrackerService(store, repo),
	}, nil
}

func (a *App) Close() error {
	return a.Tracker.Close()
}

// GracefulShutdown returns a context cancelled on SIGINT/SIGTERM and a
// channel closed once cleanup has run.
func GracefulShutdown(logger *slog.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup()
		}

		cancel()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout reached")
		case <-time.After(100 * time.Millisecond):
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}
