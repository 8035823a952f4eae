// Package core provides the activity-record domain types and input parsing.
//
// This file contains functions for parsing user-entered durations. Input is
// accepted either as plain minutes ("90") or as hours and minutes ("1:30").
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxSessionMinutes bounds a single logged session at input time. The core
// model only requires a positive duration; this limit is applied where the
// value comes straight from the user.
const MaxSessionMinutes = 300

// ParseMinutes converts a duration string to whole minutes.
//
// It accepts plain minutes ("90") and an hours:minutes form ("1:30").
// Returns ErrInvalidDuration for empty input, signs, non-digits, minute
// fields of 60 or more in the colon form, or a non-positive result.
//
// Examples:
//
//	ParseMinutes("45")   -> 45, nil
//	ParseMinutes("1:30") -> 90, nil
//	ParseMinutes("0")    -> 0, ErrInvalidDuration
func ParseMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidDuration
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidDuration
	}

	var total int
	if h, m, ok := strings.Cut(s, ":"); ok {
		if !allDigits(h) || !allDigits(m) || m == "" {
			return 0, ErrInvalidDuration
		}
		hours, err := strconv.Atoi(h)
		if err != nil {
			return 0, ErrInvalidDuration
		}
		mins, err := strconv.Atoi(m)
		if err != nil || mins >= 60 {
			return 0, ErrInvalidDuration
		}
		total = hours*60 + mins
	} else {
		if !allDigits(s) {
			return 0, ErrInvalidDuration
		}
		mins, err := strconv.Atoi(s)
		if err != nil {
			return 0, ErrInvalidDuration
		}
		total = mins
	}

	if total <= 0 {
		return 0, ErrInvalidDuration
	}
	return total, nil
}

// FormatMinutes renders minutes as a compact human duration for display.
func FormatMinutes(mins int) string {
	h := mins / 60
	m := mins % 60
	switch {
	case h > 0 && m > 0:
		return strconv.Itoa(h) + " hr " + strconv.Itoa(m) + " mins"
	case h == 1:
		return "1 hr"
	case h > 0:
		return strconv.Itoa(h) + " hrs"
	case m == 1:
		return "1 min"
	default:
		return strconv.Itoa(m) + " mins"
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
