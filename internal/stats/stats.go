// Package stats derives summary statistics from a full record set.
//
// Every function is a pure computation over the records it receives;
// nothing here is cached or updated incrementally. Callers re-read the
// store and recompute whenever they need fresh numbers.
package stats

import "hourtrack/internal/core"

// TotalTime sums minutes spent over all records.
func TotalTime(records []core.Record) int {
	total := 0
	for _, r := range records {
		total += r.TimeSpent
	}
	return total
}

// UniqueActivities counts distinct activity names. Matching is exact and
// case-sensitive: "email" and "Email" are two activities.
func UniqueActivities(records []core.Record) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.Activity] = struct{}{}
	}
	return len(seen)
}

// DaysLogged counts distinct dates present in the record set.
func DaysLogged(records []core.Record) int {
	return len(minutesByDate(records))
}

// DaysMeetingGoal counts distinct dates whose summed minutes reach the goal.
func DaysMeetingGoal(records []core.Record, goal int) int {
	met := 0
	for _, mins := range minutesByDate(records) {
		if mins >= goal {
			met++
		}
	}
	return met
}

// RemainingToday returns the minutes still needed to reach the goal given
// today's records. Never negative.
func RemainingToday(todayRecords []core.Record, goal int) int {
	remaining := goal - TotalTime(todayRecords)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TotalRecords counts logged entries.
func TotalRecords(records []core.Record) int {
	return len(records)
}

// Summarize bundles the historical figures for a record set and goal.
func Summarize(records []core.Record, goal int) core.Summary {
	return core.Summary{
		TotalRecords:     TotalRecords(records),
		UniqueActivities: UniqueActivities(records),
		TotalMinutes:     TotalTime(records),
		DaysLogged:       DaysLogged(records),
		DaysMeetingGoal:  DaysMeetingGoal(records, goal),
	}
}

// ProgressToday computes today's standing against the goal.
func ProgressToday(todayRecords []core.Record, goal int) core.Progress {
	completed := TotalTime(todayRecords)
	return core.Progress{
		GoalMinutes:      goal,
		CompletedMinutes: completed,
		RemainingMinutes: RemainingToday(todayRecords, goal),
		GoalMet:          completed >= goal,
	}
}

func minutesByDate(records []core.Record) map[core.Date]int {
	byDate := make(map[core.Date]int)
	for _, r := range records {
		byDate[r.Date] += r.TimeSpent
	}
	return byDate
}
