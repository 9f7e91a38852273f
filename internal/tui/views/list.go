package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/croplog/internal/cli"
	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/filter"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/storage"
	"github.com/xolan/croplog/internal/tui/ui"
	"github.com/xolan/croplog/internal/vocabulary"
)

// ListModel is the model for the entry list view
type ListModel struct {
	t      *i18n.Translator
	styles ui.Styles
	keys   ui.KeyMap
	loc    *time.Location

	// UI state
	width      int
	height     int
	cursor     int
	loaded     bool
	err        error
	warning    *storage.ParseWarning
	status     string
	confirming bool

	entries []entry.CropEntry
	visible []entry.CropEntry
	resolve func(string) vocabulary.Plant

	// Plant filter cycles through plants present in the list; -1 shows all.
	plants    []string
	plantIdx  int
	filterSet filter.Filter
}

// NewListModel creates a new list view model
func NewListModel(t *i18n.Translator, styles ui.Styles, keys ui.KeyMap, loc *time.Location) ListModel {
	return ListModel{
		t:        t,
		styles:   styles,
		keys:     keys,
		loc:      loc,
		plantIdx: -1,
		resolve:  vocabulary.Placeholder,
	}
}

// SetSize updates the view dimensions
func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode reports whether the view is waiting for a delete confirmation.
func (m ListModel) IsInputMode() bool {
	return m.confirming
}

// Visible returns the entries currently shown.
func (m ListModel) Visible() []entry.CropEntry {
	return m.visible
}

// Selected returns the entry under the cursor.
func (m ListModel) Selected() (entry.CropEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return entry.CropEntry{}, false
	}
	return m.visible[m.cursor], true
}

// Update implements tea.Model
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			return m.handleConfirm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Filter):
			m.cyclePlant()
		case key.Matches(msg, m.keys.Delete):
			if _, ok := m.Selected(); ok {
				m.confirming = true
				m.status = ""
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, reload
		}
		return m, nil

	case ui.EntriesLoadedMsg:
		m.loaded = true
		m.err = msg.Err
		m.warning = msg.Warning
		if msg.Err == nil {
			m.entries = msg.Entries
			if msg.Resolve != nil {
				m.resolve = msg.Resolve
			}
			m.plants = filter.Plants(m.entries)
			if m.plantIdx >= len(m.plants) {
				m.plantIdx = -1
			}
			m.applyFilter()
		}

	case ui.EntryDeletedMsg:
		if msg.Err != nil {
			m.status = m.styles.Error.Render(cli.ErrorMessage(m.t, msg.Err))
		} else {
			m.status = m.styles.Success.Render(m.t.T("entryDeleted"))
		}
	}
	return m, nil
}

func (m ListModel) handleConfirm(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.confirming = false
		if e, ok := m.Selected(); ok {
			id := e.ID
			return m, func() tea.Msg { return ui.DeleteRequestMsg{ID: id} }
		}
	case key.Matches(msg, m.keys.Cancel):
		m.confirming = false
		m.status = m.styles.Muted.Render(m.t.T("deleteCanceled"))
	}
	return m, nil
}

func (m *ListModel) cyclePlant() {
	if len(m.plants) == 0 {
		m.plantIdx = -1
	} else {
		m.plantIdx++
		if m.plantIdx >= len(m.plants) {
			m.plantIdx = -1
		}
	}
	m.cursor = 0
	m.applyFilter()
}

func (m *ListModel) applyFilter() {
	m.filterSet = filter.Filter{}
	if m.plantIdx >= 0 {
		m.filterSet.Plant = m.plants[m.plantIdx]
	}
	m.visible = m.filterSet.Apply(m.entries)
	m.cursor = clampCursor(m.cursor, len(m.visible))
}

// View implements tea.Model
func (m ListModel) View() string {
	var b strings.Builder

	title := m.t.T("list")
	if m.plantIdx >= 0 {
		title += "  " + m.styles.Muted.Render(m.t.T("filterLabel", m.resolve(m.plants[m.plantIdx]).Name))
	} else {
		title += "  " + m.styles.Muted.Render(m.t.T("filterLabel", m.t.T("allPlants")))
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	if !m.loaded {
		b.WriteString(m.t.T("loading"))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(cli.ErrorMessage(m.t, m.err)))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(m.t.T("details", m.err)))
		return b.String()
	}

	if m.warning != nil {
		b.WriteString(m.styles.Warning.Render(m.t.T("storageCorrupted")))
		b.WriteString("\n\n")
	}

	if m.confirming {
		return b.String() + m.renderDeleteConfirm()
	}

	if len(m.visible) == 0 {
		if len(m.entries) == 0 {
			b.WriteString(m.styles.Muted.Render(m.t.T("noEntries")))
			b.WriteString("\n\n")
			b.WriteString(m.styles.Muted.Render(m.t.T("noEntriesHint")))
		} else {
			b.WriteString(m.styles.Muted.Render(m.t.T("noEntriesWithFilters")))
		}
		return b.String()
	}

	b.WriteString(RenderEntryList(m.visible, m.resolve, m.styles, EntryRenderOptions{
		Width:     m.width,
		Cursor:    m.cursor,
		Location:  m.loc,
		ShowPlant: true,
		ShowNotes: true,
	}))

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 10))))
	b.WriteString("\n")
	b.WriteString(m.t.T("entryCount", len(m.visible)))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m ListModel) renderDeleteConfirm() string {
	var b strings.Builder
	if e, ok := m.Selected(); ok {
		b.WriteString(m.styles.Warning.Render(m.t.T("confirmYesNo")))
		b.WriteString("\n\n")
		b.WriteString(cli.FormatEntryDetail(m.t, e, m.resolve(e.Plant), m.loc))
		b.WriteString("\n")
	}
	return m.styles.Dialog.Render(b.String())
}

func reload() tea.Msg {
	return ui.ReloadRequestMsg{}
}
