package settings

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestDefaults(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	goal, err := repo.DailyGoal(ctx)
	if err != nil || goal != 60 {
		t.Fatalf("DailyGoal default = %d, %v; want 60", goal, err)
	}
	user, err := repo.CurrentUser(ctx)
	if err != nil || user != "default" {
		t.Fatalf("CurrentUser default = %q, %v; want default", user, err)
	}
	dark, err := repo.DarkMode(ctx)
	if err != nil || dark {
		t.Fatalf("DarkMode default = %v, %v; want false", dark, err)
	}
	at, err := repo.ReminderTime(ctx)
	if err != nil || at != "18:00" {
		t.Fatalf("ReminderTime default = %q, %v; want 18:00", at, err)
	}
}

func TestSetAndGetRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SetDailyGoal(ctx, 90); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if goal, _ := repo.DailyGoal(ctx); goal != 90 {
		t.Fatalf("goal = %d, want 90", goal)
	}

	if err := repo.SetCurrentUser(ctx, "alice"); err != nil {
		t.Fatalf("set user: %v", err)
	}
	if user, _ := repo.CurrentUser(ctx); user != "alice" {
		t.Fatalf("user = %q, want alice", user)
	}

	// Overwrite, not duplicate.
	if err := repo.SetCurrentUser(ctx, "bob"); err != nil {
		t.Fatalf("set user again: %v", err)
	}
	if user, _ := repo.CurrentUser(ctx); user != "bob" {
		t.Fatalf("user = %q, want bob", user)
	}
}

func TestSetDailyGoalRejectsNonPositive(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.SetDailyGoal(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero goal")
	}
}

func TestSetReminderTimeValidation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SetReminderTime(ctx, "07:30"); err != nil {
		t.Fatalf("valid time rejected: %v", err)
	}
	if at, _ := repo.ReminderTime(ctx); at != "07:30" {
		t.Fatalf("reminder time = %q, want 07:30", at)
	}
	for _, bad := range []string{"25:00", "7", "evening", ""} {
		if err := repo.SetReminderTime(ctx, bad); err == nil {
			t.Errorf("SetReminderTime(%q) accepted", bad)
		}
	}
}

func TestSetCurrentUserRejectsInvalidID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	for _, bad := range []string{"", "  ", "a/b"} {
		if err := repo.SetCurrentUser(ctx, bad); err == nil {
			t.Errorf("SetCurrentUser(%q) accepted", bad)
		}
	}
}

func TestGoalReachedOn(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	on, err := repo.GoalReachedOn(ctx)
	if err != nil || on != "" {
		t.Fatalf("default GoalReachedOn = %q, %v", on, err)
	}
	if err := repo.SetGoalReachedOn(ctx, "2025-03-01"); err != nil {
		t.Fatalf("set: %v", err)
	}
	on, _ = repo.GoalReachedOn(ctx)
	if on != "2025-03-01" {
		t.Fatalf("GoalReachedOn = %q", on)
	}
}

func TestCorruptGoalFallsBackToDefault(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if err := repo.Set(ctx, KeyDailyGoal, "not-a-number"); err != nil {
		t.Fatalf("raw set: %v", err)
	}
	goal, err := repo.DailyGoal(ctx)
	if err != nil || goal != 60 {
		t.Fatalf("goal = %d, %v; want default 60", goal, err)
	}
}
