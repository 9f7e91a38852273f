package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/croplog/internal/cli"
	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/grouping"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/timeutil"
	"github.com/xolan/croplog/internal/tui/ui"
	"github.com/xolan/croplog/internal/vocabulary"
)

// CalendarModel shows one month as a Monday-first grid and lists the entries
// of the selected day below it.
type CalendarModel struct {
	t      *i18n.Translator
	styles ui.Styles
	keys   ui.KeyMap
	loc    *time.Location
	now    func() time.Time

	width  int
	height int
	loaded bool
	err    error

	month    time.Time // first of the shown month in loc
	selected int       // day of month
	entries  []entry.CropEntry
	days     map[int]grouping.Day
	resolve  func(string) vocabulary.Plant
}

// NewCalendarModel creates a calendar view opened on the month containing now().
func NewCalendarModel(t *i18n.Translator, styles ui.Styles, keys ui.KeyMap, loc *time.Location, now func() time.Time) CalendarModel {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	m := CalendarModel{
		t:       t,
		styles:  styles,
		keys:    keys,
		loc:     loc,
		now:     now,
		resolve: vocabulary.Placeholder,
	}
	m.goToToday()
	return m
}

// SetSize updates the view dimensions
func (m *CalendarModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode always returns false; the calendar has no text input.
func (m CalendarModel) IsInputMode() bool {
	return false
}

// Month returns the first day of the month being shown.
func (m CalendarModel) Month() time.Time {
	return m.month
}

// SelectedDay returns the selected day of the month.
func (m CalendarModel) SelectedDay() int {
	return m.selected
}

// Update implements tea.Model
func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.shiftMonth(-1)
		case key.Matches(msg, m.keys.NextMonth):
			m.shiftMonth(1)
		case key.Matches(msg, m.keys.ThisMonth):
			m.goToToday()
			m.rebuild()
		case key.Matches(msg, m.keys.Up):
			if m.selected > 1 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Down):
			if m.selected < timeutil.DaysInMonth(m.month) {
				m.selected++
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, reload
		}

	case ui.EntriesLoadedMsg:
		m.loaded = true
		m.err = msg.Err
		if msg.Err == nil {
			m.entries = msg.Entries
			if msg.Resolve != nil {
				m.resolve = msg.Resolve
			}
			m.rebuild()
		}
	}
	return m, nil
}

func (m *CalendarModel) goToToday() {
	today := m.now().In(m.loc)
	m.month = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, m.loc)
	m.selected = today.Day()
}

func (m *CalendarModel) shiftMonth(delta int) {
	m.month = m.month.AddDate(0, delta, 0)
	m.selected = 1
	m.rebuild()
}

func (m *CalendarModel) rebuild() {
	m.days = make(map[int]grouping.Day)
	for _, d := range grouping.Month(m.entries, m.month.Year(), m.month.Month(), m.loc) {
		m.days[d.Date.Day()] = d
	}
}

// entriesForDay returns the entries recorded on the given day of the shown month.
func (m CalendarModel) entriesForDay(day int) []entry.CropEntry {
	return m.days[day].Entries
}

// View implements tea.Model
func (m CalendarModel) View() string {
	var b strings.Builder

	lang := m.t.Lang()
	title := fmt.Sprintf("%s %d", i18n.MonthName(lang, m.month.Month()), m.month.Year())
	b.WriteString(m.styles.ViewTitle.Render(m.t.T("calendar") + "  " + title))
	b.WriteString("\n")

	if !m.loaded {
		b.WriteString(m.t.T("loading"))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(cli.ErrorMessage(m.t, m.err)))
		return b.String()
	}

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	if len(m.days) == 0 {
		b.WriteString(m.styles.Muted.Render(m.t.T("noEntriesThisMonth")))
		return b.String()
	}

	day := time.Date(m.month.Year(), m.month.Month(), m.selected, 0, 0, 0, 0, m.loc)
	b.WriteString(m.styles.GroupHeader.Render(m.t.T("entriesForDay", day.Format(i18n.DateLayout))))
	b.WriteString("\n")
	entries := m.entriesForDay(m.selected)
	if len(entries) == 0 {
		b.WriteString(m.styles.Muted.Render(m.t.T("noEntries")))
		return b.String()
	}
	b.WriteString(RenderEntryList(entries, m.resolve, m.styles, EntryRenderOptions{
		Width:     m.width,
		Cursor:    -1,
		Location:  m.loc,
		ShowPlant: true,
		ShowNotes: true,
	}))
	return b.String()
}

func (m CalendarModel) renderGrid() string {
	var b strings.Builder

	lang := m.t.Lang()
	for i := 0; i < 7; i++ {
		b.WriteString(m.styles.CalendarHeader.Render(i18n.WeekdayShort(lang, time.Weekday((i+1)%7))))
	}
	b.WriteString("\n")

	today := m.now().In(m.loc)
	for _, week := range grouping.Weeks(m.month.Year(), m.month.Month(), m.loc) {
		for _, d := range week {
			label := fmt.Sprintf("%d", d.Day())
			style := m.styles.CalendarDay
			switch {
			case d.Month() != m.month.Month():
				style = m.styles.CalendarOutside
			case d.Day() == m.selected:
				style = m.styles.CalendarMarked.Reverse(true)
			case len(m.days[d.Day()].Entries) > 0:
				style = m.styles.CalendarMarked
			case sameDay(d, today):
				style = m.styles.CalendarToday
			}
			if d.Month() == m.month.Month() && len(m.days[d.Day()].Entries) > 0 {
				label += "•"
			}
			b.WriteString(style.Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
