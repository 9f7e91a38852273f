// Package timeutil parses user-entered dates and converts stored timestamps
// into calendar days of a display location.
package timeutil

import (
	"time"

	"github.com/xolan/croplog/internal/entry"
)

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfMonth returns the first day of the month at 00:00:00 in the same timezone
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of the last day of the month
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// DaysInMonth returns the number of days in the month containing t.
func DaysInMonth(t time.Time) int {
	return EndOfMonth(t).Day()
}

// IsInRange checks if the given time t falls within the range [start, end] (inclusive).
// A zero start or end leaves that side unbounded.
func IsInRange(t, start, end time.Time) bool {
	if !start.IsZero() && t.Before(start) {
		return false
	}
	if !end.IsZero() && t.After(end) {
		return false
	}
	return true
}

// LoadLocation resolves a configured timezone name. Empty and "Local" mean
// the system zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// StoredDate renders a calendar day chosen by the user as a stored entry
// date: the instant of its local midnight, in UTC.
func StoredDate(day time.Time) string {
	return entry.FormatTimestamp(StartOfDay(day))
}

// InLocation parses a stored date and converts it to loc.
func InLocation(stored string, loc *time.Location) (time.Time, bool) {
	t, ok := entry.ParseTimestamp(stored)
	if !ok {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc), true
}

// FormatDate renders a stored date in loc with layout, or returns it
// unchanged when it does not parse.
func FormatDate(stored string, loc *time.Location, layout string) string {
	t, ok := InLocation(stored, loc)
	if !ok {
		return stored
	}
	return t.Format(layout)
}

// DayKey returns the YYYY-MM-DD of a stored date as seen in loc.
func DayKey(stored string, loc *time.Location) (string, bool) {
	t, ok := InLocation(stored, loc)
	if !ok {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// StartOfWeek returns Monday 00:00:00 of the week containing t
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}
