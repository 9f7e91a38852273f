package ui

import (
	"sort"
	"strings"
	"testing"
)

func TestNewThemeProvider_WithTheme(t *testing.T) {
	tp := NewThemeProvider("nord")

	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}
}

func TestNewThemeProvider_InvalidTheme(t *testing.T) {
	tp := NewThemeProvider("nonexistent-theme-xyz")

	if tp.CurrentName() != FallbackTheme {
		t.Errorf("expected fallback theme %q, got %q", FallbackTheme, tp.CurrentName())
	}
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.SetTheme("nord") {
		t.Error("expected SetTheme to return true for valid theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}

	if tp.SetTheme("nonexistent-theme-xyz") {
		t.Error("expected SetTheme to return false for invalid theme")
	}
	if tp.CurrentName() != "nord" {
		t.Error("theme should not change after invalid SetTheme")
	}
}

func TestThemeProvider_AvailableThemes(t *testing.T) {
	themes := NewThemeProvider("").AvailableThemes()

	if len(themes) < 2 {
		t.Fatalf("expected several themes, got %d", len(themes))
	}
	if !sort.StringsAreSorted(themes) {
		t.Error("expected sorted theme names")
	}
}

func TestStylesForTheme(t *testing.T) {
	for _, name := range []string{"", "nord", "nonexistent-theme-xyz"} {
		styles := StylesForTheme(name)
		if !strings.Contains(styles.ViewTitle.Render("Calendar"), "Calendar") {
			t.Errorf("StylesForTheme(%q) produced unusable styles", name)
		}
	}
}
