// Package log fixes the attribute names used in structured log lines so
// the same concept is spelled the same way everywhere.
package log

const (
	FieldUserID   = "user_id"
	FieldCategory = "category"
	FieldActivity = "activity"
	FieldMinutes  = "minutes"
	FieldPosition = "position"
	FieldPath     = "path"
	FieldCount    = "count"
	FieldInterval = "interval"
	FieldError    = "error"
)
