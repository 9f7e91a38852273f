package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	// Test that all key bindings are properly configured
	tests := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", keys.Up},
		{"Down", keys.Down},
		{"Left", keys.Left},
		{"Right", keys.Right},
		{"NextTab", keys.NextTab},
		{"PrevTab", keys.PrevTab},
		{"Tab1", keys.Tab1},
		{"Tab2", keys.Tab2},
		{"Tab3", keys.Tab3},
		{"Back", keys.Back},
		{"Quit", keys.Quit},
		{"Help", keys.Help},
		{"Refresh", keys.Refresh},
		{"Delete", keys.Delete},
		{"Filter", keys.Filter},
		{"Confirm", keys.Confirm},
		{"Cancel", keys.Cancel},
		{"PrevMonth", keys.PrevMonth},
		{"NextMonth", keys.NextMonth},
		{"ThisMonth", keys.ThisMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Check that the binding has keys defined
			if len(tt.binding.Keys()) == 0 {
				t.Errorf("expected keys for binding %s", tt.name)
			}
			// Check that help text is defined
			help := tt.binding.Help()
			if help.Key == "" {
				t.Errorf("expected help key for binding %s", tt.name)
			}
			if help.Desc == "" {
				t.Errorf("expected help description for binding %s", tt.name)
			}
		})
	}
}

func TestKeyBindingsMatch(t *testing.T) {
	keys := DefaultKeyMap()

	// Test that specific keys match their bindings
	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"Quit q", keys.Quit, "q"},
		{"Quit ctrl+c", keys.Quit, "ctrl+c"},
		{"Up k", keys.Up, "k"},
		{"Up arrow", keys.Up, "up"},
		{"Down j", keys.Down, "j"},
		{"Down arrow", keys.Down, "down"},
		{"Back esc", keys.Back, "esc"},
		{"Help ?", keys.Help, "?"},
		{"Tab1 1", keys.Tab1, "1"},
		{"Tab3 3", keys.Tab3, "3"},
		{"NextTab tab", keys.NextTab, "tab"},
		{"Delete d", keys.Delete, "d"},
		{"Filter f", keys.Filter, "f"},
		{"Refresh r", keys.Refresh, "r"},
		{"Confirm y", keys.Confirm, "y"},
		{"Cancel esc", keys.Cancel, "esc"},
		{"PrevMonth p", keys.PrevMonth, "p"},
		{"NextMonth right", keys.NextMonth, "right"},
		{"ThisMonth t", keys.ThisMonth, "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, k := range tt.binding.Keys() {
				if k == tt.key {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected binding %s to include key %s, got keys %v", tt.name, tt.key, tt.binding.Keys())
			}
		})
	}
}
