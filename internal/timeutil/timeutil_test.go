package timeutil

import (
	"strings"
	"testing"
	"time"
)

var athens = time.FixedZone("EEST", 3*60*60)

// 2024-06-03 01:30 in Athens, still 2 June in UTC.
var now = time.Date(2024, time.June, 2, 22, 30, 0, 0, time.UTC)

func TestParseDateIn(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"iso", "2024-01-15", time.Date(2024, time.January, 15, 0, 0, 0, 0, athens)},
		{"european", "15/01/2024", time.Date(2024, time.January, 15, 0, 0, 0, 0, athens)},
		{"european short", "5/6/2024", time.Date(2024, time.June, 5, 0, 0, 0, 0, athens)},
		{"leap day", "2024-02-29", time.Date(2024, time.February, 29, 0, 0, 0, 0, athens)},
		{"today uses loc", "today", time.Date(2024, time.June, 3, 0, 0, 0, 0, athens)},
		{"greek today", "Σήμερα", time.Date(2024, time.June, 3, 0, 0, 0, 0, athens)},
		{"yesterday", "yesterday", time.Date(2024, time.June, 2, 0, 0, 0, 0, athens)},
		{"greek yesterday", "χθες", time.Date(2024, time.June, 2, 0, 0, 0, 0, athens)},
		{"surrounding spaces", "  2024-01-15 ", time.Date(2024, time.January, 15, 0, 0, 0, 0, athens)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDateIn(tt.input, now, athens)
			if err != nil {
				t.Fatalf("ParseDateIn(%q) unexpected error: %v", tt.input, err)
			}
			if !result.Equal(tt.expected) {
				t.Errorf("ParseDateIn(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseDateIn_InvalidInput(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"", "cannot be empty"},
		{"2024", "missing month and day"},
		{"2024-01", "missing day"},
		{"15/01", "missing year"},
		{"2024-01-15-01", "too many date parts"},
		{"01/15/2024", "invalid date format"},
		{"2023-02-29", "invalid date format"},
		{"tomorrow", "invalid date format"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseDateIn(tt.input, now, athens)
			if err == nil {
				t.Fatalf("ParseDateIn(%q) expected error, got %v", tt.input, result)
			}
			if !result.IsZero() {
				t.Errorf("ParseDateIn(%q) expected zero time on error, got %v", tt.input, result)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("ParseDateIn(%q) error = %q, expected it to contain %q", tt.input, err, tt.message)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"", time.Date(2024, time.June, 1, 0, 0, 0, 0, athens), false},
		{"2024-05", time.Date(2024, time.May, 1, 0, 0, 0, 0, athens), false},
		{"05/2024", time.Date(2024, time.May, 1, 0, 0, 0, 0, athens), false},
		{"5/2024", time.Date(2024, time.May, 1, 0, 0, 0, 0, athens), false},
		{"2024-13", time.Time{}, true},
		{"May", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseMonth(tt.input, now, athens)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !result.Equal(tt.expected) {
				t.Errorf("ParseMonth(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseDateRangeFlags(t *testing.T) {
	start, end, err := ParseDateRangeFlags("", "", 7, now, athens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2024, time.May, 28, 0, 0, 0, 0, athens)) {
		t.Errorf("--last 7 start = %v", start)
	}
	if !end.Equal(EndOfDay(time.Date(2024, time.June, 3, 0, 0, 0, 0, athens))) {
		t.Errorf("--last 7 end = %v", end)
	}

	start, end, err = ParseDateRangeFlags("2024-05-01", "2024-05-31", 0, now, athens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Day() != 1 || end.Day() != 31 || end.Hour() != 23 {
		t.Errorf("from/to range = %v .. %v", start, end)
	}

	start, _, err = ParseDateRangeFlags("", "", 0, now, athens)
	if err != nil || !start.IsZero() {
		t.Errorf("no flags: start=%v err=%v, expected unbounded start", start, err)
	}

	if _, _, err := ParseDateRangeFlags("2024-05-01", "", 3, now, athens); err == nil {
		t.Error("expected conflict error for --last with --from")
	}
	if _, _, err := ParseDateRangeFlags("2024-06-01", "2024-05-01", 0, now, athens); err == nil {
		t.Error("expected error when --from is after --to")
	}
}

func TestIsInRange(t *testing.T) {
	day := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"inside", start, end, true},
		{"unbounded", time.Time{}, time.Time{}, true},
		{"open start", time.Time{}, end, true},
		{"before", day.Add(time.Hour), end, false},
		{"after", start, day.Add(-time.Hour), false},
		{"inclusive", day, day, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInRange(day, tt.start, tt.end); got != tt.want {
				t.Errorf("IsInRange() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestMonthBoundaries(t *testing.T) {
	feb := time.Date(2024, time.February, 14, 9, 0, 0, 0, athens)
	if DaysInMonth(feb) != 29 {
		t.Errorf("DaysInMonth(Feb 2024) = %d", DaysInMonth(feb))
	}
	if got := EndOfMonth(feb); got.Day() != 29 || got.Hour() != 23 || got.Location() != athens {
		t.Errorf("EndOfMonth() = %v", got)
	}
	if got := StartOfMonth(feb); got.Day() != 1 || got.Hour() != 0 {
		t.Errorf("StartOfMonth() = %v", got)
	}
}

func TestStoredDateAndDisplay(t *testing.T) {
	day := time.Date(2024, time.May, 1, 15, 0, 0, 0, athens)

	stored := StoredDate(day)
	if stored != "2024-04-30T21:00:00.000Z" {
		t.Fatalf("StoredDate() = %q", stored)
	}

	if got := FormatDate(stored, athens, "02/01/2006"); got != "01/05/2024" {
		t.Errorf("FormatDate() in Athens = %q", got)
	}
	if got := FormatDate(stored, time.UTC, "02/01/2006"); got != "30/04/2024" {
		t.Errorf("FormatDate() in UTC = %q", got)
	}
	if got := FormatDate("soon", athens, "02/01/2006"); got != "soon" {
		t.Errorf("FormatDate() of unparseable date = %q", got)
	}

	key, ok := DayKey(stored, athens)
	if !ok || key != "2024-05-01" {
		t.Errorf("DayKey() = %q, %v", key, ok)
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != time.Local {
		t.Errorf("LoadLocation(\"\") = %v, %v", loc, err)
	}
	loc, err = LoadLocation("UTC")
	if err != nil || loc.String() != "UTC" {
		t.Errorf("LoadLocation(UTC) = %v, %v", loc, err)
	}
	if _, err := LoadLocation("Mars/Olympus"); err == nil {
		t.Error("expected error for unknown zone")
	}
}
