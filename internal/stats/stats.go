package stats

import (
	"sort"
	"time"

	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/timeutil"
)

// Statistics contains aggregated statistics for a set of entries
type Statistics struct {
	EntryCount      int
	DaysWithEntries int
	PlantCount      int
	// First and Last are the earliest and latest parseable entry dates; both
	// are zero when no date parses.
	First time.Time
	Last  time.Time
}

// PlantBreakdown contains statistics for a single plant
type PlantBreakdown struct {
	Plant      string
	EntryCount int
	Last       time.Time
}

// TaskBreakdown contains statistics for a single task
type TaskBreakdown struct {
	Task       string
	EntryCount int
}

// CalculateStatistics computes statistics for entries, counting calendar days in loc
func CalculateStatistics(entries []entry.CropEntry, loc *time.Location) Statistics {
	stats := Statistics{}
	if len(entries) == 0 {
		return stats
	}

	days := make(map[string]bool)
	plants := make(map[string]bool)

	for _, e := range entries {
		stats.EntryCount++
		plants[e.Plant] = true

		t, ok := entry.ParseTimestamp(e.Date)
		if !ok {
			continue
		}
		if key, ok := timeutil.DayKey(e.Date, loc); ok {
			days[key] = true
		}
		if stats.First.IsZero() || t.Before(stats.First) {
			stats.First = t
		}
		if stats.Last.IsZero() || t.After(stats.Last) {
			stats.Last = t
		}
	}

	stats.DaysWithEntries = len(days)
	stats.PlantCount = len(plants)
	return stats
}

// CalculatePlantBreakdown groups entries by plant id, most entries first.
// Ties are broken by plant id.
func CalculatePlantBreakdown(entries []entry.CropEntry) []PlantBreakdown {
	plantMap := make(map[string]*PlantBreakdown)
	for _, e := range entries {
		b, exists := plantMap[e.Plant]
		if !exists {
			b = &PlantBreakdown{Plant: e.Plant}
			plantMap[e.Plant] = b
		}
		b.EntryCount++
		if t, ok := entry.ParseTimestamp(e.Date); ok && t.After(b.Last) {
			b.Last = t
		}
	}

	breakdowns := make([]PlantBreakdown, 0, len(plantMap))
	for _, b := range plantMap {
		breakdowns = append(breakdowns, *b)
	}
	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].EntryCount != breakdowns[j].EntryCount {
			return breakdowns[i].EntryCount > breakdowns[j].EntryCount
		}
		return breakdowns[i].Plant < breakdowns[j].Plant
	})
	return breakdowns
}

// CalculateTaskBreakdown groups entries by task, most entries first.
func CalculateTaskBreakdown(entries []entry.CropEntry) []TaskBreakdown {
	taskMap := make(map[string]int)
	for _, e := range entries {
		taskMap[e.Task]++
	}

	breakdowns := make([]TaskBreakdown, 0, len(taskMap))
	for task, n := range taskMap {
		breakdowns = append(breakdowns, TaskBreakdown{Task: task, EntryCount: n})
	}
	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].EntryCount != breakdowns[j].EntryCount {
			return breakdowns[i].EntryCount > breakdowns[j].EntryCount
		}
		return breakdowns[i].Task < breakdowns[j].Task
	})
	return breakdowns
}
