package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	isoPartialRe    = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	yearOnlyRe      = regexp.MustCompile(`^\d{4}$`)
	isoPartialDayRe = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)
	euroPartialRe   = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
	tooManyPartsRe  = regexp.MustCompile(`^\d+[-/]\d+[-/]\d+[-/]`)
)

// ParseDateIn parses a day in YYYY-MM-DD or DD/MM/YYYY format, or one of the
// words today/σήμερα and yesterday/χθες, and returns midnight of that day in loc.
// ISO format is tried first, so 05/06/2024 is read as 5 June.
func ParseDateIn(input string, now time.Time, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)")
	}
	if loc == nil {
		loc = time.Local
	}

	switch strings.ToLower(input) {
	case "today", "σήμερα":
		return StartOfDay(now.In(loc)), nil
	case "yesterday", "χθες":
		return StartOfDay(now.In(loc).AddDate(0, 0, -1)), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", input, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("02/01/2006", input, loc); err == nil {
		return t, nil
	}
	// Single-digit day and month, e.g. 5/6/2024.
	if t, err := time.ParseInLocation("2/1/2006", input, loc); err == nil {
		return t, nil
	}

	return time.Time{}, buildDateParseError(input)
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case isoPartialDayRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-%s)", input, input)
	case euroPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", input, input)
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("invalid date '%s': too many date parts (use format YYYY-MM-DD or DD/MM/YYYY)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", input)
	}
}

// ParseMonth parses YYYY-MM or MM/YYYY and returns the first of that month in loc.
// An empty input selects the month containing now.
func ParseMonth(input string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return StartOfMonth(now.In(loc)), nil
	}
	for _, layout := range []string{"2006-01", "01/2006", "1/2006"} {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid month '%s' (use YYYY-MM or MM/YYYY, e.g., 2024-05 or 05/2024)", input)
}

// ParseDateRangeFlags turns --from/--to/--last flag values into an inclusive
// [start, end] range in loc. A zero start means unbounded; a missing --to ends today.
// --last N selects N whole days ending today and cannot be combined with --from/--to.
func ParseDateRangeFlags(fromStr, toStr string, lastDays int, now time.Time, loc *time.Location) (start, end time.Time, err error) {
	if loc == nil {
		loc = time.Local
	}
	if lastDays < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid number of days: must be positive, got %d", lastDays)
	}
	if lastDays > 0 && (fromStr != "" || toStr != "") {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot use --last with --from or --to")
	}

	today := now.In(loc)
	if lastDays > 0 {
		return StartOfDay(today.AddDate(0, 0, -(lastDays - 1))), EndOfDay(today), nil
	}

	if fromStr != "" {
		start, err = ParseDateIn(fromStr, now, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
	}

	if toStr != "" {
		toDate, err := ParseDateIn(toStr, now, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		end = EndOfDay(toDate)
	} else {
		end = EndOfDay(today)
	}

	if !start.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from date (%s) is after --to date (%s)",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	return start, end, nil
}
