package cmd

import (
	"strings"
	"testing"
)

func TestLanguage(t *testing.T) {
	env := setupTest(t)

	language("")
	if !strings.Contains(env.stdout.String(), "Language: English") {
		t.Errorf("expected English from config, got %q", env.stdout.String())
	}

	env.reset()
	language("el")
	if env.exitCode != 0 {
		t.Fatalf("unexpected exit %d: %s", env.exitCode, env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Ελληνικά") {
		t.Errorf("expected confirmation in Greek, got %q", env.stdout.String())
	}

	// The stored preference now wins over the config file.
	env.reset()
	language("")
	if !strings.Contains(env.stdout.String(), "Γλώσσα") {
		t.Errorf("expected Greek output, got %q", env.stdout.String())
	}

	// And the flag wins over the preference.
	env.reset()
	langFlag = "en"
	language("")
	if !strings.Contains(env.stdout.String(), "Language: English") {
		t.Errorf("expected --lang to override, got %q", env.stdout.String())
	}
}

func TestLanguage_Invalid(t *testing.T) {
	env := setupTest(t)

	language("fr")

	if env.exitCode != 1 || !strings.Contains(env.stderr.String(), "unsupported language") {
		t.Errorf("expected unsupported language error, exit=%d stderr=%q", env.exitCode, env.stderr.String())
	}
}

func TestSnapshotsAndRollback(t *testing.T) {
	env := setupTest(t)

	listSnapshots()
	if !strings.Contains(env.stdout.String(), "No snapshots available") {
		t.Errorf("expected no snapshots, got %q", env.stdout.String())
	}

	env.seed(t, [3]string{"2024-06-01", "tomato", "Sowing"})
	deleteEntry("00000001", true)
	env.reset()

	listSnapshots()
	if !strings.Contains(env.stdout.String(), "#1  1 entries") {
		t.Errorf("expected snapshot line, got %q", env.stdout.String())
	}

	env.reset()
	rollback("1")
	if env.exitCode != 0 {
		t.Fatalf("unexpected exit %d: %s", env.exitCode, env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Restored snapshot #1") {
		t.Errorf("expected rollback message, got %q", env.stdout.String())
	}
	if entries := env.entries(t); len(entries) != 1 || entries[0].Task != "Sowing" {
		t.Errorf("expected deleted entry back, got %+v", entries)
	}
}

func TestRollback_Errors(t *testing.T) {
	tests := []struct {
		arg     string
		message string
	}{
		{"x", "Invalid snapshot number 'x'"},
		{"9", "must be between 1 and 3"},
		{"2", "snapshot 2 does not exist"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			env := setupTest(t)
			rollback(tt.arg)
			if env.exitCode != 1 {
				t.Errorf("expected exit 1, got %d", env.exitCode)
			}
			if !strings.Contains(env.stderr.String(), tt.message) {
				t.Errorf("expected %q in stderr, got %q", tt.message, env.stderr.String())
			}
		})
	}
}
