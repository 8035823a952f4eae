// Package reminder runs the daily reminder: a minute-level check of the
// wall clock against the configured reminder time.
package reminder

import "time"

// Schedule decides whether a reminder is due. It fires at most once per
// day, at the minute the configured time is reached or first observed
// after (so a worker started late still reminds).
type Schedule struct {
	At string // wall-clock time "HH:MM"
}

// IsDue reports whether the reminder should fire at now, given when it
// last fired. A zero lastFired means it never has.
func (s Schedule) IsDue(lastFired, now time.Time) bool {
	target, err := time.Parse("15:04", s.At)
	if err != nil {
		return false
	}
	firesAt := time.Date(now.Year(), now.Month(), now.Day(),
		target.Hour(), target.Minute(), 0, 0, now.Location())
	if now.Before(firesAt) {
		return false
	}
	if lastFired.IsZero() {
		return true
	}
	// Already fired today?
	return lastFired.Format("2006-01-02") != now.Format("2006-01-02")
}
