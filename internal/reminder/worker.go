package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	logf "hourtrack/internal/log"
)

// Preferences is the slice of the settings store the worker polls. Values
// are re-read every tick so changes apply without a restart.
type Preferences interface {
	RemindersEnabled(ctx context.Context) (bool, error)
	ReminderTime(ctx context.Context) (string, error)
}

// Notifier delivers the reminder to the user.
type Notifier func(msg string)

// Worker polls the clock and fires the daily reminder.
type Worker struct {
	prefs     Preferences
	interval  time.Duration
	notify    Notifier
	lastFired time.Time
}

func NewWorker(prefs Preferences, interval time.Duration, notify Notifier) *Worker {
	if notify == nil {
		notify = func(msg string) { fmt.Println(msg) }
	}
	return &Worker{
		prefs:    prefs,
		interval: interval,
		notify:   notify,
	}
}

// Run blocks until the context is cancelled, checking once per interval.
func (w *Worker) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "Reminder worker started", logf.FieldInterval, w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Reminder worker stopping")
			return ctx.Err()
		case now := <-ticker.C:
			if err := w.check(ctx, now); err != nil {
				slog.WarnContext(ctx, "Reminder check failed", logf.FieldError, err)
			}
		}
	}
}

func (w *Worker) check(ctx context.Context, now time.Time) error {
	enabled, err := w.prefs.RemindersEnabled(ctx)
	if err != nil {
		return fmt.Errorf("read reminder preference: %w", err)
	}
	if !enabled {
		return nil
	}

	at, err := w.prefs.ReminderTime(ctx)
	if err != nil {
		return fmt.Errorf("read reminder time: %w", err)
	}

	if (Schedule{At: at}).IsDue(w.lastFired, now) {
		w.lastFired = now
		w.notify("This is your reminder: log today's activities.")
		slog.InfoContext(ctx, "Reminder fired", "at", at)
	}
	return nil
}
