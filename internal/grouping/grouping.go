// Package grouping builds the grouped-by-plant and calendar-month
// projections of an entry list.
package grouping

import (
	"time"

	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/timeutil"
	"github.com/xolan/croplog/internal/vocabulary"
)

// Group holds the entries recorded for one plant.
type Group struct {
	Plant   vocabulary.Plant
	Entries []entry.CropEntry
}

// Day holds the entries whose date falls on one calendar day.
type Day struct {
	Date    time.Time // midnight in the display location
	Entries []entry.CropEntry
}

// ByPlant groups entries by plant id. Groups appear in the order their plant
// first appears in entries; within a group entries are newest first.
func ByPlant(entries []entry.CropEntry, resolve func(id string) vocabulary.Plant) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, e := range entries {
		i, ok := index[e.Plant]
		if !ok {
			i = len(groups)
			index[e.Plant] = i
			groups = append(groups, Group{Plant: resolvePlant(resolve, e.Plant)})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	for i := range groups {
		entry.SortByDateDesc(groups[i].Entries)
	}
	return groups
}

func resolvePlant(resolve func(string) vocabulary.Plant, id string) vocabulary.Plant {
	if resolve == nil {
		return vocabulary.Placeholder(id)
	}
	return resolve(id)
}

// Month returns the days of the given month in loc that have at least one
// entry, in ascending order. Entries keep their relative order within a day.
// Entries with unparseable dates are skipped.
func Month(entries []entry.CropEntry, year int, month time.Month, loc *time.Location) []Day {
	if loc == nil {
		loc = time.Local
	}
	byDay := make(map[int][]entry.CropEntry)
	for _, e := range entries {
		t, ok := timeutil.InLocation(e.Date, loc)
		if !ok || t.Year() != year || t.Month() != month {
			continue
		}
		byDay[t.Day()] = append(byDay[t.Day()], e)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	var days []Day
	for d := 1; d <= timeutil.DaysInMonth(first); d++ {
		if list, ok := byDay[d]; ok {
			days = append(days, Day{Date: time.Date(year, month, d, 0, 0, 0, 0, loc), Entries: list})
		}
	}
	return days
}

// Weeks returns the calendar grid for a month: rows of seven days starting on
// Monday, beginning with the week that contains the 1st and ending with the
// week that contains the last day. Leading and trailing cells belong to the
// neighbouring months.
func Weeks(year int, month time.Month, loc *time.Location) [][7]time.Time {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := time.Date(year, month, timeutil.DaysInMonth(first), 0, 0, 0, 0, loc)

	start := timeutil.StartOfWeek(first)
	var weeks [][7]time.Time
	for day := start; !day.After(last); {
		var week [7]time.Time
		for i := range week {
			week[i] = day
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
