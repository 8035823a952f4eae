package core

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar-date form used everywhere: in record files,
// in CLI arguments and in settings values.
const DateLayout = "2006-01-02"

// DefaultCategory is substituted for a missing or empty category, both when
// appending and when reading back older rows that lack the field.
const DefaultCategory = "Other"

// Categories offered by the input surfaces. Free text is still accepted;
// this list only drives prompts and completion.
var Categories = []string{"Work", "Leisure", "Exercise", "Other"}

type (
	// Date is a calendar date in DateLayout form. Records carry it as the
	// raw string so rows written by older versions round-trip untouched;
	// Validate is only applied when a record is created.
	Date string

	// Record is one logged activity: what was done, under which category,
	// on which day, and for how many minutes.
	Record struct {
		Date      Date
		Category  string
		Activity  string
		TimeSpent int // minutes, always > 0 for valid records
	}
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyActivity   = errors.New("empty activity name")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrEmptyUserID     = errors.New("empty user id")
)

// Today returns the current calendar date at call time.
func Today() Date {
	return Date(time.Now().Format(DateLayout))
}

func (d Date) String() string { return string(d) }

func (d Date) Validate() error {
	if _, err := time.Parse(DateLayout, string(d)); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// NewRecord builds a record dated today, the only creation path the
// application offers: the date of a new entry is never user-configurable.
func NewRecord(category, activity string, minutes int) Record {
	return Record{
		Date:      Today(),
		Category:  strings.TrimSpace(category),
		Activity:  strings.TrimSpace(activity),
		TimeSpent: minutes,
	}
}

func (r Record) Validate() error {
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Activity) == "" {
		return ErrEmptyActivity
	}
	if len(r.Activity) > 200 {
		return errors.New("activity name too long (max 200 characters)")
	}
	if r.TimeSpent <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// ValidateUserID rejects ids that cannot name a per-user store file.
func ValidateUserID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyUserID
	}
	if strings.ContainsAny(id, `/\`) {
		return errors.New("user id must not contain path separators")
	}
	return nil
}
