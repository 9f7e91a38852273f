package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style
	Muted     lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Entry list
	EntrySelected lipgloss.Style
	EntryNormal   lipgloss.Style
	EntryID       lipgloss.Style
	EntryDate     lipgloss.Style
	EntryTask     lipgloss.Style
	EntryNotes    lipgloss.Style

	// Grouped view
	GroupHeader lipgloss.Style

	// Calendar
	CalendarHeader  lipgloss.Style
	CalendarDay     lipgloss.Style
	CalendarOutside lipgloss.Style
	CalendarToday   lipgloss.Style
	CalendarMarked  lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette holds the colours the styles are built from.
type palette struct {
	primary, secondary, accent, muted lipgloss.TerminalColor
	success, warning, errorColor      lipgloss.TerminalColor
	fg, bg, selected, outside         lipgloss.TerminalColor
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:    lipgloss.Color("#16A34A"), // Green
		secondary:  lipgloss.Color("#2563EB"), // Blue
		accent:     lipgloss.Color("#8B4513"), // Brown
		muted:      lipgloss.Color("#6B7280"), // Gray
		success:    lipgloss.Color("82"),
		warning:    lipgloss.Color("214"),
		errorColor: lipgloss.Color("#DC2626"),
		fg:         lipgloss.Color("252"),
		bg:         lipgloss.Color("236"),
		selected:   lipgloss.Color("237"),
		outside:    lipgloss.Color("238"),
	})
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// Green is the primary colour; blue marks dates and keys, yellow today.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:    r.Green(),
		secondary:  r.Blue(),
		accent:     r.Yellow(),
		muted:      r.BrightBlack(),
		success:    r.BrightGreen(),
		warning:    r.Yellow(),
		errorColor: r.Red(),
		fg:         r.Fg(),
		bg:         r.Bg(),
		selected:   r.BrightBlack(),
		outside:    r.BrightBlack(),
	})
}

func newStyles(c palette) Styles {
	primary, secondary, accent, muted := c.primary, c.secondary, c.accent, c.muted
	success, warning, errorColor := c.success, c.warning, c.errorColor

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		Muted: lipgloss.NewStyle().
			Foreground(muted),

		StatusBar: lipgloss.NewStyle().
			Foreground(c.fg).
			Background(c.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		EntrySelected: lipgloss.NewStyle().
			Background(c.selected).
			Bold(true),
		EntryNormal: lipgloss.NewStyle(),
		EntryID: lipgloss.NewStyle().
			Foreground(muted),
		EntryDate: lipgloss.NewStyle().
			Foreground(secondary),
		EntryTask: lipgloss.NewStyle().
			Foreground(c.fg),
		EntryNotes: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		GroupHeader: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1),

		CalendarHeader: lipgloss.NewStyle().
			Foreground(muted).
			Width(4).
			Align(lipgloss.Right),
		CalendarDay: lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Right),
		CalendarOutside: lipgloss.NewStyle().
			Foreground(c.outside).
			Width(4).
			Align(lipgloss.Right),
		CalendarToday: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Underline(true).
			Width(4).
			Align(lipgloss.Right),
		CalendarMarked: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Width(4).
			Align(lipgloss.Right),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
