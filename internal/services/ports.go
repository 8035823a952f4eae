package services

import (
	"context"

	"hourtrack/internal/core"
)

// SettingsStore is the slice of the settings collaborator the tracker
// consumes. The daily goal and current user are read; only the per-day
// goal-reached marker and the current user id are written back.
type SettingsStore interface {
	DailyGoal(ctx context.Context) (int, error)
	CurrentUser(ctx context.Context) (string, error)
	SetCurrentUser(ctx context.Context, userID string) error
	GoalReachedOn(ctx context.Context) (core.Date, error)
	SetGoalReachedOn(ctx context.Context, d core.Date) error
}
