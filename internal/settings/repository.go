// Package settings persists application preferences in a small SQLite
// key/value table, separate from the per-user record files. The record
// core consumes the daily goal and current user id read-only; the CLI
// settings commands are the only writers.
package settings

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hourtrack/internal/core"

	_ "modernc.org/sqlite"
)

// Keys stored in the settings table.
const (
	KeyDailyGoal        = "daily_goal"
	KeyUserID           = "user_id"
	KeyDarkMode         = "dark_mode"
	KeyRemindersEnabled = "reminders_enabled"
	KeyReminderTime     = "reminder_time"
	KeyGoalReachedOn    = "goal_reached_on"
)

// defaults are returned for keys that were never written.
var defaults = map[string]string{
	KeyDailyGoal:        "60",
	KeyUserID:           "default",
	KeyDarkMode:         "false",
	KeyRemindersEnabled: "false",
	KeyReminderTime:     "18:00",
	KeyGoalReachedOn:    "",
}

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create settings directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open settings database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping settings database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Get returns the stored value for key, or its default when never written.
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return defaults[key], nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

func (r *Repository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// DailyGoal returns the goal in minutes. A stored value that fails to parse
// falls back to the default rather than failing the caller.
func (r *Repository) DailyGoal(ctx context.Context) (int, error) {
	raw, err := r.Get(ctx, KeyDailyGoal)
	if err != nil {
		return 0, err
	}
	goal, err := strconv.Atoi(raw)
	if err != nil || goal < 1 {
		goal, _ = strconv.Atoi(defaults[KeyDailyGoal])
	}
	return goal, nil
}

func (r *Repository) SetDailyGoal(ctx context.Context, minutes int) error {
	if minutes < 1 {
		return core.ErrInvalidDuration
	}
	return r.Set(ctx, KeyDailyGoal, strconv.Itoa(minutes))
}

func (r *Repository) CurrentUser(ctx context.Context) (string, error) {
	return r.Get(ctx, KeyUserID)
}

func (r *Repository) SetCurrentUser(ctx context.Context, userID string) error {
	if err := core.ValidateUserID(userID); err != nil {
		return err
	}
	return r.Set(ctx, KeyUserID, strings.TrimSpace(userID))
}

func (r *Repository) DarkMode(ctx context.Context) (bool, error) {
	return r.getBool(ctx, KeyDarkMode)
}

func (r *Repository) SetDarkMode(ctx context.Context, on bool) error {
	return r.Set(ctx, KeyDarkMode, strconv.FormatBool(on))
}

func (r *Repository) RemindersEnabled(ctx context.Context) (bool, error) {
	return r.getBool(ctx, KeyRemindersEnabled)
}

func (r *Repository) SetRemindersEnabled(ctx context.Context, on bool) error {
	return r.Set(ctx, KeyRemindersEnabled, strconv.FormatBool(on))
}

// ReminderTime returns the configured wall-clock time as "HH:MM".
func (r *Repository) ReminderTime(ctx context.Context) (string, error) {
	raw, err := r.Get(ctx, KeyReminderTime)
	if err != nil {
		return "", err
	}
	if _, err := time.Parse("15:04", raw); err != nil {
		return defaults[KeyReminderTime], nil
	}
	return raw, nil
}

func (r *Repository) SetReminderTime(ctx context.Context, hhmm string) error {
	if _, err := time.Parse("15:04", hhmm); err != nil {
		return fmt.Errorf("invalid reminder time %q: use HH:MM", hhmm)
	}
	return r.Set(ctx, KeyReminderTime, hhmm)
}

// GoalReachedOn returns the date the goal-reached notice last fired, so the
// congratulation shows once per day instead of on every log entry.
func (r *Repository) GoalReachedOn(ctx context.Context) (core.Date, error) {
	raw, err := r.Get(ctx, KeyGoalReachedOn)
	return core.Date(raw), err
}

func (r *Repository) SetGoalReachedOn(ctx context.Context, d core.Date) error {
	return r.Set(ctx, KeyGoalReachedOn, d.String())
}

func (r *Repository) getBool(ctx context.Context, key string) (bool, error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return raw == "true", nil
}
