// Package services provides the orchestration layer between the CLI/TUI
// surfaces, the record store and the settings store.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"hourtrack/internal/core"
	logf "hourtrack/internal/log"
	"hourtrack/internal/stats"
	"hourtrack/internal/storage"
)

// ErrPositionOutOfRange reports an edit or delete aimed past the end of the
// record sequence. Positions are zero-based indexes into ReadAll order.
var ErrPositionOutOfRange = errors.New("record position out of range")

// TrackerService orchestrates activity logging across the record store and
// the settings store.
type TrackerService struct {
	store    storage.RecordStore
	settings SettingsStore
}

func NewTrackerService(store storage.RecordStore, settings SettingsStore) *TrackerService {
	return &TrackerService{
		store:    store,
		settings: settings,
	}
}

// EnsureUser makes sure the user's store exists, creating an empty one on
// first contact. Safe to call on every startup.
func (s *TrackerService) EnsureUser(ctx context.Context, userID string) error {
	if err := s.store.Initialize(ctx, userID); err != nil {
		return fmt.Errorf("ensure user store: %w", err)
	}
	return nil
}

// LogActivity appends a record dated today and reports whether this entry
// pushed today's total across the daily goal for the first time today.
func (s *TrackerService) LogActivity(ctx context.Context, userID, category, activity string, minutes int) (core.Record, bool, error) {
	rec := core.NewRecord(category, activity, minutes)
	if err := rec.Validate(); err != nil {
		return core.Record{}, false, err
	}
	if err := s.store.Append(ctx, userID, rec); err != nil {
		return core.Record{}, false, fmt.Errorf("log activity: %w", err)
	}

	slog.InfoContext(ctx, "Activity logged",
		logf.FieldUserID, userID,
		logf.FieldCategory, rec.Category,
		logf.FieldActivity, rec.Activity,
		logf.FieldMinutes, rec.TimeSpent)

	reached, err := s.refreshGoalMarker(ctx, userID)
	if err != nil {
		// The record is saved; the congratulation is best-effort.
		slog.WarnContext(ctx, "Failed to update goal marker", logf.FieldUserID, userID, logf.FieldError, err)
		return rec, false, nil
	}
	return rec, reached, nil
}

// History returns every record for the user in stored order. A store that
// does not exist yet is reported once as a warning and treated as empty.
func (s *TrackerService) History(ctx context.Context, userID string) ([]core.Record, error) {
	records, err := s.store.ReadAll(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrMissingStore) {
			slog.WarnContext(ctx, "No data file found; a new one will be created", logf.FieldUserID, userID)
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	return records, nil
}

// Today returns the records dated today. Missing store reads as empty with
// no warning, so a first run looks like "no activity yet".
func (s *TrackerService) Today(ctx context.Context, userID string) ([]core.Record, error) {
	records, err := s.store.ReadToday(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read today: %w", err)
	}
	return records, nil
}

// EditActivity replaces the activity name and duration of the record at the
// given position, then rewrites the whole sequence.
func (s *TrackerService) EditActivity(ctx context.Context, userID string, position int, activity string, minutes int) error {
	records, err := s.store.ReadAll(ctx, userID)
	if err != nil {
		return fmt.Errorf("read records for edit: %w", err)
	}
	if position < 0 || position >= len(records) {
		return ErrPositionOutOfRange
	}

	rec := records[position]
	rec.Activity = activity
	rec.TimeSpent = minutes
	if err := rec.Validate(); err != nil {
		return err
	}
	records[position] = rec

	if err := s.store.WriteAll(ctx, userID, records); err != nil {
		return fmt.Errorf("write records after edit: %w", err)
	}

	slog.InfoContext(ctx, "Activity edited",
		logf.FieldUserID, userID, logf.FieldPosition, position,
		logf.FieldActivity, rec.Activity, logf.FieldMinutes, rec.TimeSpent)

	if _, err := s.refreshGoalMarker(ctx, userID); err != nil {
		slog.WarnContext(ctx, "Failed to update goal marker", logf.FieldUserID, userID, logf.FieldError, err)
	}
	return nil
}

// DeleteActivity removes the record at the given position and rewrites the
// whole sequence. The caller is assumed to have confirmed the deletion.
func (s *TrackerService) DeleteActivity(ctx context.Context, userID string, position int) error {
	records, err := s.store.ReadAll(ctx, userID)
	if err != nil {
		return fmt.Errorf("read records for delete: %w", err)
	}
	if position < 0 || position >= len(records) {
		return ErrPositionOutOfRange
	}

	records = append(records[:position], records[position+1:]...)
	if err := s.store.WriteAll(ctx, userID, records); err != nil {
		return fmt.Errorf("write records after delete: %w", err)
	}

	slog.InfoContext(ctx, "Activity deleted", logf.FieldUserID, userID, logf.FieldPosition, position)

	if _, err := s.refreshGoalMarker(ctx, userID); err != nil {
		slog.WarnContext(ctx, "Failed to update goal marker", logf.FieldUserID, userID, logf.FieldError, err)
	}
	return nil
}

// ClearHistory truncates the user's record sequence to empty. The caller is
// assumed to have confirmed.
func (s *TrackerService) ClearHistory(ctx context.Context, userID string) error {
	if err := s.store.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	slog.InfoContext(ctx, "History cleared", logf.FieldUserID, userID)
	return nil
}

// Stats computes the historical summary against the configured daily goal.
func (s *TrackerService) Stats(ctx context.Context, userID string) (core.Summary, error) {
	records, err := s.History(ctx, userID)
	if err != nil {
		return core.Summary{}, err
	}
	goal, err := s.settings.DailyGoal(ctx)
	if err != nil {
		return core.Summary{}, fmt.Errorf("read daily goal: %w", err)
	}
	return stats.Summarize(records, goal), nil
}

// Progress computes today's standing against the configured daily goal.
func (s *TrackerService) Progress(ctx context.Context, userID string) (core.Progress, error) {
	today, err := s.Today(ctx, userID)
	if err != nil {
		return core.Progress{}, err
	}
	goal, err := s.settings.DailyGoal(ctx)
	if err != nil {
		return core.Progress{}, fmt.Errorf("read daily goal: %w", err)
	}
	return stats.ProgressToday(today, goal), nil
}

// ExportHistory writes the full history as CSV to path. An existing file is
// refused unless overwrite is set.
func (s *TrackerService) ExportHistory(ctx context.Context, userID, path string, overwrite bool) error {
	records, err := s.History(ctx, userID)
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("export target already exists: %w", err)
		}
		return fmt.Errorf("create export file: %w", err)
	}
	if err := storage.WriteRecords(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	slog.InfoContext(ctx, "History exported", logf.FieldUserID, userID, logf.FieldPath, path, logf.FieldCount, len(records))
	return nil
}

// Register ensures the user's store exists and makes the id current. An id
// that already has a store is accepted unchanged; registration is as
// idempotent as Initialize.
func (s *TrackerService) Register(ctx context.Context, userID string) error {
	if err := s.store.Initialize(ctx, userID); err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	if err := s.settings.SetCurrentUser(ctx, userID); err != nil {
		return fmt.Errorf("set current user: %w", err)
	}
	slog.InfoContext(ctx, "User registered", logf.FieldUserID, userID)
	return nil
}

// Login switches the current user, initializing the store lazily. There is
// no identity check: any id can be logged into.
func (s *TrackerService) Login(ctx context.Context, userID string) error {
	if err := s.store.Initialize(ctx, userID); err != nil {
		return fmt.Errorf("login user: %w", err)
	}
	if err := s.settings.SetCurrentUser(ctx, userID); err != nil {
		return fmt.Errorf("set current user: %w", err)
	}
	slog.InfoContext(ctx, "User logged in", logf.FieldUserID, userID)
	return nil
}

// CurrentUser resolves the active user id from settings.
func (s *TrackerService) CurrentUser(ctx context.Context) (string, error) {
	return s.settings.CurrentUser(ctx)
}

// refreshGoalMarker keeps the once-per-day congratulation honest: it is set
// the first time today's total crosses the goal and cleared again if a later
// edit or delete drops the total back under.
func (s *TrackerService) refreshGoalMarker(ctx context.Context, userID string) (bool, error) {
	today, err := s.store.ReadToday(ctx, userID)
	if err != nil {
		return false, err
	}
	goal, err := s.settings.DailyGoal(ctx)
	if err != nil {
		return false, err
	}
	marker, err := s.settings.GoalReachedOn(ctx)
	if err != nil {
		return false, err
	}

	total := stats.TotalTime(today)
	switch {
	case total >= goal && marker != core.Today():
		if err := s.settings.SetGoalReachedOn(ctx, core.Today()); err != nil {
			return false, err
		}
		return true, nil
	case total < goal && marker == core.Today():
		if err := s.settings.SetGoalReachedOn(ctx, ""); err != nil {
			return false, err
		}
	}
	return false, nil
}

// Close releases whatever underlying resources the stores hold.
func (s *TrackerService) Close() error {
	var errs []error
	if c, ok := s.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}
	if c, ok := s.settings.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("settings: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close tracker service: %v", errs)
	}
	return nil
}
