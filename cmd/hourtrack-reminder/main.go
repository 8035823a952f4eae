package main

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"hourtrack/internal/cli"
	"hourtrack/internal/reminder"
	"hourtrack/internal/settings"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting hourtrack-reminder")

	cfg := cli.LoadAndValidateConfig(logger)

	repo, err := settings.NewRepository(cfg.SettingsDBPath)
	if err != nil {
		logger.Error("Failed to open settings store", "error", err, "path", cfg.SettingsDBPath)
		os.Exit(1)
	}

	ctx, done := cli.GracefulShutdown(logger, 5*time.Second, func() {
		if err := repo.Close(); err != nil {
			logger.Warn("Failed to close settings store", "error", err)
		}
	})

	worker := reminder.NewWorker(repo, cfg.ReminderPollInterval, nil)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Reminder worker failed", "error", err)
		os.Exit(1)
	}
	<-done
	logger.Info("Reminder worker stopped")
}
