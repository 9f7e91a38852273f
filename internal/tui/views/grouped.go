package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/croplog/internal/cli"
	"github.com/xolan/croplog/internal/grouping"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/tui/ui"
)

// GroupedModel shows entries grouped by plant, one header per plant.
type GroupedModel struct {
	t      *i18n.Translator
	styles ui.Styles
	keys   ui.KeyMap
	loc    *time.Location

	width  int
	height int
	loaded bool
	err    error

	groups []grouping.Group
	offset int // first rendered line
}

// NewGroupedModel creates a new grouped view model
func NewGroupedModel(t *i18n.Translator, styles ui.Styles, keys ui.KeyMap, loc *time.Location) GroupedModel {
	return GroupedModel{
		t:      t,
		styles: styles,
		keys:   keys,
		loc:    loc,
	}
}

// SetSize updates the view dimensions
func (m *GroupedModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode always returns false for this view.
func (m GroupedModel) IsInputMode() bool {
	return false
}

// Groups returns the current plant groups.
func (m GroupedModel) Groups() []grouping.Group {
	return m.groups
}

// Update implements tea.Model
func (m GroupedModel) Update(msg tea.Msg) (GroupedModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.offset > 0 {
				m.offset--
			}
		case key.Matches(msg, m.keys.Down):
			if m.offset < len(m.lines())-1 {
				m.offset++
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, reload
		}

	case ui.EntriesLoadedMsg:
		m.loaded = true
		m.err = msg.Err
		if msg.Err == nil {
			m.groups = grouping.ByPlant(msg.Entries, msg.Resolve)
			m.offset = clampCursor(m.offset, len(m.lines()))
		}
	}
	return m, nil
}

// lines renders every group, one string per output line.
func (m GroupedModel) lines() []string {
	var out []string
	for _, g := range m.groups {
		header := cli.PlantStyle(g.Plant).Bold(true).Render(cli.PlantLabel(g.Plant)) +
			"  " + m.styles.Muted.Render(m.t.T("entryCount", len(g.Entries)))
		out = append(out, m.styles.GroupHeader.Render(header))

		body := RenderEntryList(g.Entries, nil, m.styles, EntryRenderOptions{
			Width:     m.width,
			Cursor:    -1,
			Location:  m.loc,
			ShowNotes: true,
		})
		out = append(out, strings.Split(strings.TrimSuffix(body, "\n"), "\n")...)
		out = append(out, "")
	}
	return out
}

// View implements tea.Model
func (m GroupedModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(m.t.T("grouped")))
	b.WriteString("\n")

	if !m.loaded {
		b.WriteString(m.t.T("loading"))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(cli.ErrorMessage(m.t, m.err)))
		return b.String()
	}
	if len(m.groups) == 0 {
		b.WriteString(m.styles.Muted.Render(m.t.T("noEntriesToView")))
		return b.String()
	}

	lines := m.lines()
	end := len(lines)
	if m.height > 2 && m.offset+m.height-2 < end {
		end = m.offset + m.height - 2
	}
	b.WriteString(strings.Join(lines[m.offset:end], "\n"))
	return b.String()
}
