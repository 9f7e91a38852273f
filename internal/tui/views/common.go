package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/croplog/internal/cli"
	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/timeutil"
	"github.com/xolan/croplog/internal/tui/ui"
	"github.com/xolan/croplog/internal/vocabulary"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width     int            // Available width for rendering
	Cursor    int            // Currently selected entry index (-1 for none)
	Location  *time.Location // Display location for dates
	ShowPlant bool           // Include the plant column
	ShowNotes bool           // Add an indented notes line
}

// RenderEntryList renders a list of entries with aligned columns
func RenderEntryList(entries []entry.CropEntry, resolve func(string) vocabulary.Plant, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}
	if resolve == nil {
		resolve = vocabulary.Placeholder
	}

	// Calculate column widths for alignment
	maxPlantWidth := 0
	maxTaskWidth := 0
	for _, e := range entries {
		if w := lipgloss.Width(cli.PlantLabel(resolve(e.Plant))); w > maxPlantWidth {
			maxPlantWidth = w
		}
		if w := lipgloss.Width(e.Task); w > maxTaskWidth {
			maxTaskWidth = w
		}
	}

	maxAllowedTaskWidth := opts.Width - maxPlantWidth - 24
	if maxAllowedTaskWidth < 12 {
		maxAllowedTaskWidth = 12
	}
	if maxTaskWidth > maxAllowedTaskWidth {
		maxTaskWidth = maxAllowedTaskWidth
	}

	var b strings.Builder
	for i, e := range entries {
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		id := styles.EntryID.Render(cli.ShortID(e.ID))
		date := styles.EntryDate.Render(timeutil.FormatDate(e.Date, opts.Location, i18n.DateLayout))
		task := styles.EntryTask.Render(pad(cli.Truncate(e.Task, maxTaskWidth), maxTaskWidth))

		line := fmt.Sprintf("%s  %s  %s", id, date, task)
		if opts.ShowPlant {
			plant := pad(cli.PlantLabel(resolve(e.Plant)), maxPlantWidth)
			line = fmt.Sprintf("%s  %s  %s  %s", id, date, plant, task)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if opts.ShowNotes && e.Notes != "" {
			b.WriteString("    ")
			b.WriteString(styles.EntryNotes.Render(cli.Truncate(e.Notes, max(opts.Width-4, 20))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// pad right-pads s with spaces to the given cell width.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// clampCursor keeps cursor inside [0, n).
func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
