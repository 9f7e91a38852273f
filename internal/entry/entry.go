package entry

import (
	"sort"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for every stored timestamp:
// UTC with millisecond precision, e.g. 2024-05-01T09:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CropEntry represents one recorded crop-care activity.
// Date and CreatedAt are kept as the strings that were stored; the store
// itself never validates them.
type CropEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Plant     string `json:"plant"`
	Task      string `json:"task"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// Fields holds the user-supplied part of a new entry.
type Fields struct {
	Date  string
	Plant string
	Task  string
	Notes string
}

// Patch holds a partial update. Nil fields are left unchanged.
type Patch struct {
	Date  *string
	Plant *string
	Task  *string
	Notes *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Date == nil && p.Plant == nil && p.Task == nil && p.Notes == nil
}

// Apply returns e with the patch merged over it. ID and CreatedAt are never touched.
func (p Patch) Apply(e CropEntry) CropEntry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Plant != nil {
		e.Plant = *p.Plant
	}
	if p.Task != nil {
		e.Task = *p.Task
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	return e
}

// Fields returns the user-editable part of the entry.
func (e CropEntry) Fields() Fields {
	return Fields{Date: e.Date, Plant: e.Plant, Task: e.Task, Notes: e.Notes}
}

// MissingFields lists which of the required fields (id, plant, task, date) are empty.
func (e CropEntry) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(e.ID) == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(e.Plant) == "" {
		missing = append(missing, "plant")
	}
	if strings.TrimSpace(e.Task) == "" {
		missing = append(missing, "task")
	}
	if strings.TrimSpace(e.Date) == "" {
		missing = append(missing, "date")
	}
	return missing
}

// FormatTimestamp renders t in TimestampLayout. Sub-millisecond digits are
// dropped, so a rendered timestamp can sort before t itself.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

var parseLayouts = []string{
	time.RFC3339, // also accepts fractional seconds
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a stored date or timestamp. Values without a zone are
// read as UTC. The second result is false when s matches no known layout.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortByDateDesc stable-sorts entries newest date first. Unparseable dates
// sort after every parseable one.
func SortByDateDesc(entries []CropEntry) {
	type key struct {
		t  time.Time
		ok bool
	}
	keys := make(map[string]key, len(entries))
	keyOf := func(date string) key {
		k, seen := keys[date]
		if !seen {
			t, ok := ParseTimestamp(date)
			k = key{t: t, ok: ok}
			keys[date] = k
		}
		return k
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := keyOf(entries[i].Date), keyOf(entries[j].Date)
		if a.ok != b.ok {
			return a.ok
		}
		if !a.ok {
			return false
		}
		return a.t.After(b.t)
	})
}
