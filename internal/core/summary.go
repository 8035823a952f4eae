package core

// Summary bundles the historical figures shown on the stats surface.
type Summary struct {
	TotalRecords     int
	UniqueActivities int
	TotalMinutes     int
	DaysLogged       int
	DaysMeetingGoal  int
}

// Progress is today's standing against the daily goal.
type Progress struct {
	GoalMinutes      int
	CompletedMinutes int
	RemainingMinutes int
	GoalMet          bool
}
