// Package tui provides the terminal browser for the crop journal.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/storage"
	"github.com/xolan/croplog/internal/tui/ui"
	"github.com/xolan/croplog/internal/tui/views"
	"github.com/xolan/croplog/internal/vocabulary"
)

// Tab represents a view tab
type Tab int

const (
	TabList Tab = iota
	TabCalendar
	TabGrouped
)

// tabKeys are the translation keys of the tab titles, in Tab order.
var tabKeys = []string{"list", "calendar", "grouped"}

// EntryLoader reads the entry collection.
type EntryLoader interface {
	LoadWithWarnings(ctx context.Context) (storage.LoadResult, error)
}

// EntryDeleter removes an entry by id.
type EntryDeleter interface {
	Delete(ctx context.Context, id string) error
}

// Options wires the model to storage.
type Options struct {
	Entries    EntryLoader
	Deleter    EntryDeleter
	Plants     func(ctx context.Context) ([]vocabulary.Plant, error)
	Translator *i18n.Translator
	Location   *time.Location
	Now        func() time.Time
	// Theme names a bubbletint theme; empty keeps the built-in colours.
	Theme string
}

// Model is the root TUI model
type Model struct {
	opts Options
	t    *i18n.Translator

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool

	// View models
	listView     views.ListModel
	calendarView views.CalendarModel
	groupedView  views.GroupedModel

	styles ui.Styles
	keys   ui.KeyMap
}

// New creates a new TUI model
func New(opts Options) Model {
	if opts.Translator == nil {
		opts.Translator = i18n.New(i18n.Default)
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	styles := ui.StylesForTheme(opts.Theme)
	keys := ui.DefaultKeyMap()
	t := opts.Translator

	return Model{
		opts:         opts,
		t:            t,
		activeTab:    TabList,
		styles:       styles,
		keys:         keys,
		listView:     views.NewListModel(t, styles, keys, opts.Location),
		calendarView: views.NewCalendarModel(t, styles, keys, opts.Location, opts.Now),
		groupedView:  views.NewGroupedModel(t, styles, keys, opts.Location),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadEntries()
}

// loadEntries reads the collection and the plant vocabulary.
func (m Model) loadEntries() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if m.opts.Entries == nil {
			return ui.EntriesLoadedMsg{Resolve: vocabulary.Placeholder}
		}
		result, err := m.opts.Entries.LoadWithWarnings(ctx)
		if err != nil {
			return ui.EntriesLoadedMsg{Err: err}
		}
		entry.SortByDateDesc(result.Entries)

		resolve := vocabulary.Placeholder
		if m.opts.Plants != nil {
			plants, err := m.opts.Plants(ctx)
			if err != nil {
				return ui.EntriesLoadedMsg{Err: err}
			}
			resolve = vocabulary.Resolver(plants)
		}
		return ui.EntriesLoadedMsg{Entries: result.Entries, Resolve: resolve, Warning: result.Warning}
	}
}

// deleteEntry removes an entry and reports the outcome.
func (m Model) deleteEntry(id string) tea.Cmd {
	return func() tea.Msg {
		if m.opts.Deleter == nil {
			return ui.EntryDeletedMsg{ID: id}
		}
		return ui.EntryDeletedMsg{ID: id, Err: m.opts.Deleter.Delete(context.Background(), id)}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A pending confirmation takes every key.
		if !m.isModalInputMode() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit

			case key.Matches(msg, m.keys.Help):
				m.showHelp = !m.showHelp
				return m, nil

			case key.Matches(msg, m.keys.NextTab):
				m.activeTab = Tab((int(m.activeTab) + 1) % len(tabKeys))
				return m, nil

			case key.Matches(msg, m.keys.PrevTab):
				m.activeTab = Tab((int(m.activeTab) - 1 + len(tabKeys)) % len(tabKeys))
				return m, nil

			case key.Matches(msg, m.keys.Tab1):
				m.activeTab = TabList
				return m, nil

			case key.Matches(msg, m.keys.Tab2):
				m.activeTab = TabCalendar
				return m, nil

			case key.Matches(msg, m.keys.Tab3):
				m.activeTab = TabGrouped
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.listView.SetSize(m.width, contentHeight)
		m.calendarView.SetSize(m.width, contentHeight)
		m.groupedView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.EntriesLoadedMsg:
		// Every view shows the same collection.
		m.listView, _ = m.listView.Update(msg)
		m.calendarView, _ = m.calendarView.Update(msg)
		m.groupedView, _ = m.groupedView.Update(msg)
		return m, nil

	case ui.ReloadRequestMsg:
		return m, m.loadEntries()

	case ui.DeleteRequestMsg:
		return m, m.deleteEntry(msg.ID)

	case ui.EntryDeletedMsg:
		m.listView, _ = m.listView.Update(msg)
		if msg.Err != nil {
			return m, nil
		}
		return m, m.loadEntries()
	}

	// Update the active view
	switch m.activeTab {
	case TabList:
		m.listView, cmd = m.listView.Update(msg)
	case TabCalendar:
		m.calendarView, cmd = m.calendarView.Update(msg)
	case TabGrouped:
		m.groupedView, cmd = m.groupedView.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return m.t.T("loading")
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabList:
		b.WriteString(m.listView.View())
	case TabCalendar:
		b.WriteString(m.calendarView.View())
	case TabGrouped:
		b.WriteString(m.groupedView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, k := range tabKeys {
		name := m.t.T(k)
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isModalInputMode() {
		parts = append(parts, m.renderKeyHelp("y", m.keys.Confirm.Help().Desc))
		parts = append(parts, m.renderKeyHelp("n", m.keys.Cancel.Help().Desc))
	} else {
		switch m.activeTab {
		case TabList:
			parts = append(parts, m.styles.StatusHelp.Render(m.t.T("helpUpDown")))
			parts = append(parts, m.styles.StatusHelp.Render(m.t.T("helpFilter")))
			parts = append(parts, m.styles.StatusHelp.Render(m.t.T("helpDelete")))
		case TabCalendar:
			parts = append(parts, m.renderKeyHelp("←/→", m.keys.PrevMonth.Help().Desc+"/"+m.keys.NextMonth.Help().Desc))
			parts = append(parts, m.renderKeyHelp("t", m.keys.ThisMonth.Help().Desc))
		case TabGrouped:
			parts = append(parts, m.styles.StatusHelp.Render(m.t.T("helpUpDown")))
		}

		parts = append(parts, m.styles.StatusHelp.Render(m.t.T("helpRefresh")))
		parts = append(parts, m.styles.StatusHelp.Render(m.t.T("helpSwitch")))
		parts = append(parts, m.renderKeyHelp("?", m.keys.Help.Help().Desc))
		parts = append(parts, m.styles.StatusHelp.Render(m.t.T("helpQuit")))
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isModalInputMode reports whether the active view is waiting for a
// confirmation and global keys must be ignored.
func (m Model) isModalInputMode() bool {
	switch m.activeTab {
	case TabList:
		return m.listView.IsInputMode()
	case TabCalendar:
		return m.calendarView.IsInputMode()
	case TabGrouped:
		return m.groupedView.IsInputMode()
	}
	return false
}

// renderHelpOverlay renders the key bindings of the active view in a dialog.
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render(m.t.T("welcome")))
	help.WriteString("\n")

	bindings := []key.Binding{m.keys.NextTab, m.keys.Tab1, m.keys.Tab2, m.keys.Tab3, m.keys.Help, m.keys.Quit, m.keys.Refresh}
	switch m.activeTab {
	case TabList:
		bindings = append(bindings, m.keys.Up, m.keys.Down, m.keys.Filter, m.keys.Delete)
	case TabCalendar:
		bindings = append(bindings, m.keys.Up, m.keys.Down, m.keys.PrevMonth, m.keys.NextMonth, m.keys.ThisMonth)
	case TabGrouped:
		bindings = append(bindings, m.keys.Up, m.keys.Down)
	}
	for _, b := range bindings {
		h := b.Help()
		help.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
	}

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
