package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// FallbackTheme is used when a configured theme name is unknown.
const FallbackTheme = "dracula"

// ThemeProvider manages TUI themes using bubbletint
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider creates a ThemeProvider set to name, or to FallbackTheme
// when no tint has that id.
func NewThemeProvider(name string) *ThemeProvider {
	allTints := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range allTints {
		if t.ID() == FallbackTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(allTints) > 0 {
		fallback = allTints[0]
	}

	registry := tint.NewRegistry(fallback, allTints...)
	if name != "" {
		registry.SetTintID(name)
	}
	return &ThemeProvider{registry: registry}
}

// SetTheme sets the current theme by name.
// Returns true if the theme was found and set, false otherwise.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// CurrentName returns the id of the current theme.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// AvailableThemes returns a sorted list of all available theme names.
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return ids
}

// Styles returns the styles for the current theme.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}

// StylesForTheme returns DefaultStyles for an empty name, otherwise the
// styles of the named bubbletint theme.
func StylesForTheme(name string) Styles {
	if name == "" {
		return DefaultStyles()
	}
	return NewThemeProvider(name).Styles()
}
