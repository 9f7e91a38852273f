// Package cli provides the CLI presentation layer for croplog.
// It handles command-line output formatting of entries, plants and errors.
package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/croplog/internal/apperr"
	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/storage"
	"github.com/xolan/croplog/internal/timeutil"
	"github.com/xolan/croplog/internal/vocabulary"
)

// ShortIDLength is the number of id characters shown in listings.
const ShortIDLength = 8

var (
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	boldStyle = lipgloss.NewStyle().Bold(true)
)

// PlantStyle returns the style that paints text in the plant's colour.
func PlantStyle(p vocabulary.Plant) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color))
}

// PlantLabel renders "icon name" in the plant's colour.
func PlantLabel(p vocabulary.Plant) string {
	return PlantStyle(p).Render(p.Icon + " " + p.Name)
}

// Heading renders a section title.
func Heading(s string) string {
	return boldStyle.Render(s)
}

// Dim renders secondary text.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// ShortID returns the prefix of id shown in listings.
func ShortID(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}

// FormatEntryLine formats one entry as "[id]  date  plant  task", followed by
// an indented notes line when the entry has notes.
func FormatEntryLine(e entry.CropEntry, p vocabulary.Plant, loc *time.Location) string {
	date := timeutil.FormatDate(e.Date, loc, i18n.DateLayout)
	line := fmt.Sprintf("%s  %s  %s  %s", Dim("["+ShortID(e.ID)+"]"), date, PlantLabel(p), e.Task)
	if e.Notes != "" {
		line += "\n" + strings.Repeat(" ", ShortIDLength+4) + Dim(e.Notes)
	}
	return line
}

// FormatEntryDetail formats every field of an entry, one per line.
func FormatEntryDetail(t *i18n.Translator, e entry.CropEntry, p vocabulary.Plant, loc *time.Location) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%-14s %s\n", label+":", value)
	}
	row(t.T("id"), e.ID)
	row(t.T("date"), timeutil.FormatDate(e.Date, loc, i18n.DateLayout))
	row(t.T("plant"), PlantLabel(p))
	row(t.T("task"), e.Task)
	if e.Notes != "" {
		row(t.T("notes"), e.Notes)
	}
	row(t.T("created"), timeutil.FormatDate(e.CreatedAt, loc, i18n.DateTimeLayout))
	return strings.TrimRight(b.String(), "\n")
}

// FindByPrefix returns the entry whose id equals or uniquely starts with prefix.
func FindByPrefix(entries []entry.CropEntry, prefix string) (entry.CropEntry, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return entry.CropEntry{}, apperr.Validation("entry id cannot be empty")
	}

	var matches []entry.CropEntry
	for _, e := range entries {
		if e.ID == prefix {
			return e, nil
		}
		if strings.HasPrefix(e.ID, prefix) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return entry.CropEntry{}, apperr.NotFound("entry %q not found", prefix)
	case 1:
		return matches[0], nil
	default:
		return entry.CropEntry{}, apperr.Validation("id prefix %q matches %d entries", prefix, len(matches))
	}
}

// FormatCorruptionWarning formats a ParseWarning into a human-readable string
func FormatCorruptionWarning(warning storage.ParseWarning) string {
	return fmt.Sprintf("  %s (error: %s)", Truncate(warning.Content, 50), warning.Error)
}

// Truncate shortens s to at most n runes, ending with "..." when cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 3 {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-3]) + "..."
}

// ErrorMessage returns the translated headline for err based on its kind.
func ErrorMessage(t *i18n.Translator, err error) string {
	switch apperr.KindOf(err) {
	case apperr.KindStorage:
		return t.T("storageError")
	case apperr.KindNotFound:
		return t.T("entryNotFound")
	case apperr.KindDuplicate:
		return duplicateMessage(t, err)
	case apperr.KindValidation:
		return t.T("validationError")
	case apperr.KindInvalidFormat:
		return t.T("invalidFormatError")
	default:
		return t.T("unexpectedError")
	}
}

func duplicateMessage(t *i18n.Translator, err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && strings.HasPrefix(appErr.Message, "task ") {
		return t.T("taskAlreadyExists")
	}
	return t.T("plantAlreadyExists")
}
