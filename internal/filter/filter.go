package filter

import (
	"strings"
	"time"

	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/timeutil"
)

// Filter represents filtering criteria for crop entries.
// All filter fields are optional - empty values match all entries.
type Filter struct {
	Plant   string    // Exact plant id
	Task    string    // Exact task name
	Keyword string    // Case-insensitive substring of the notes
	From    time.Time // Inclusive lower bound on the entry date; zero is unbounded
	To      time.Time // Inclusive upper bound on the entry date; zero is unbounded
}

// IsEmpty returns true if all filter fields are empty (matches all entries)
func (f Filter) IsEmpty() bool {
	return f.Plant == "" && f.Task == "" && f.Keyword == "" && f.From.IsZero() && f.To.IsZero()
}

// HasRange reports whether a date bound is set.
func (f Filter) HasRange() bool {
	return !f.From.IsZero() || !f.To.IsZero()
}

// Apply returns a new slice containing only entries that match, in their
// original order. If the filter is empty, returns entries unchanged.
func (f Filter) Apply(entries []entry.CropEntry) []entry.CropEntry {
	if f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.CropEntry, 0)
	for _, e := range entries {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Matches reports whether e satisfies every set criterion.
func (f Filter) Matches(e entry.CropEntry) bool {
	return f.MatchesPlant(e) && f.MatchesTask(e) && f.MatchesKeyword(e) && f.MatchesRange(e)
}

// MatchesPlant returns true if the entry's plant id equals the filter plant.
func (f Filter) MatchesPlant(e entry.CropEntry) bool {
	return f.Plant == "" || e.Plant == f.Plant
}

// MatchesTask returns true if the entry's task equals the filter task.
func (f Filter) MatchesTask(e entry.CropEntry) bool {
	return f.Task == "" || e.Task == f.Task
}

// MatchesKeyword returns true if the keyword is found in the entry's notes (case-insensitive).
func (f Filter) MatchesKeyword(e entry.CropEntry) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Notes), strings.ToLower(f.Keyword))
}

// MatchesRange returns true if the entry's date lies in [From, To].
// With a range set, entries whose date does not parse never match.
func (f Filter) MatchesRange(e entry.CropEntry) bool {
	if !f.HasRange() {
		return true
	}
	t, ok := entry.ParseTimestamp(e.Date)
	if !ok {
		return false
	}
	return timeutil.IsInRange(t, f.From, f.To)
}

// Plants returns the distinct plant ids of entries in first-appearance order.
func Plants(entries []entry.CropEntry) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, e := range entries {
		if !seen[e.Plant] {
			seen[e.Plant] = true
			ids = append(ids, e.Plant)
		}
	}
	return ids
}
