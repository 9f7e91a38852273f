package stats

import (
	"testing"
	"time"

	"github.com/xolan/croplog/internal/entry"
)

var athens = time.FixedZone("EEST", 3*60*60)

// Helper function to create an entry
func makeEntry(date, plant, task string) entry.CropEntry {
	return entry.CropEntry{Date: date, Plant: plant, Task: task}
}

var sample = []entry.CropEntry{
	makeEntry("2024-06-15T00:00:00.000Z", "tomato", "Watering"),
	makeEntry("2024-06-15T10:00:00.000Z", "vine", "Pruning"),
	makeEntry("2024-06-01T00:00:00.000Z", "tomato", "Sowing"),
	makeEntry("2024-05-31T22:00:00.000Z", "tomato", "Watering"),
	makeEntry("someday", "pepper", "Watering"),
}

func TestCalculateStatistics_EmptyEntries(t *testing.T) {
	stats := CalculateStatistics([]entry.CropEntry{}, time.UTC)

	if stats.EntryCount != 0 || stats.DaysWithEntries != 0 || stats.PlantCount != 0 {
		t.Errorf("expected zero statistics, got %+v", stats)
	}
	if !stats.First.IsZero() || !stats.Last.IsZero() {
		t.Errorf("expected zero span, got %v .. %v", stats.First, stats.Last)
	}
}

func TestCalculateStatistics(t *testing.T) {
	tests := []struct {
		name string
		loc  *time.Location
		days int
	}{
		// 31 May 22:00 UTC is 1 June in Athens.
		{"utc", time.UTC, 3},
		{"athens", athens, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := CalculateStatistics(sample, tt.loc)

			if stats.EntryCount != 5 {
				t.Errorf("EntryCount = %d, expected 5", stats.EntryCount)
			}
			if stats.PlantCount != 3 {
				t.Errorf("PlantCount = %d, expected 3", stats.PlantCount)
			}
			if stats.DaysWithEntries != tt.days {
				t.Errorf("DaysWithEntries = %d, expected %d", stats.DaysWithEntries, tt.days)
			}
			if !stats.First.Equal(time.Date(2024, time.May, 31, 22, 0, 0, 0, time.UTC)) {
				t.Errorf("First = %v", stats.First)
			}
			if !stats.Last.Equal(time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)) {
				t.Errorf("Last = %v", stats.Last)
			}
		})
	}
}

func TestCalculatePlantBreakdown(t *testing.T) {
	got := CalculatePlantBreakdown(sample)

	expected := []struct {
		plant string
		count int
	}{
		{"tomato", 3},
		{"pepper", 1},
		{"vine", 1},
	}
	if len(got) != len(expected) {
		t.Fatalf("expected %d plants, got %+v", len(expected), got)
	}
	for i, e := range expected {
		if got[i].Plant != e.plant || got[i].EntryCount != e.count {
			t.Errorf("breakdown[%d] = %+v, expected %s x%d", i, got[i], e.plant, e.count)
		}
	}
	if !got[0].Last.Equal(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("tomato Last = %v", got[0].Last)
	}
	if !got[1].Last.IsZero() {
		t.Errorf("expected zero Last for an unparseable date, got %v", got[1].Last)
	}
}

func TestCalculateTaskBreakdown(t *testing.T) {
	got := CalculateTaskBreakdown(sample)

	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %+v", got)
	}
	if got[0].Task != "Watering" || got[0].EntryCount != 3 {
		t.Errorf("expected Watering first, got %+v", got[0])
	}
	if got[1].Task != "Pruning" || got[2].Task != "Sowing" {
		t.Errorf("expected ties ordered by name, got %+v", got)
	}
}

func TestBreakdown_Empty(t *testing.T) {
	if got := CalculatePlantBreakdown(nil); got == nil || len(got) != 0 {
		t.Errorf("CalculatePlantBreakdown(nil) = %#v", got)
	}
	if got := CalculateTaskBreakdown(nil); got == nil || len(got) != 0 {
		t.Errorf("CalculateTaskBreakdown(nil) = %#v", got)
	}
}
