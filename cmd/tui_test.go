package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xolan/croplog/internal/tui"
)

func swapRunProgram(t *testing.T, fn func(tui.Options) error) {
	t.Helper()
	orig := runProgram
	runProgram = fn
	t.Cleanup(func() { runProgram = orig })
}

func TestRunTUI(t *testing.T) {
	env := setupTest(t)
	env.seed(t, [3]string{"2024-06-01", "tomato", "Sowing"})

	var got tui.Options
	swapRunProgram(t, func(opts tui.Options) error {
		got = opts
		result, err := opts.Entries.LoadWithWarnings(context.Background())
		if err != nil {
			return err
		}
		if len(result.Entries) != 1 {
			t.Errorf("expected the seeded entry, got %d", len(result.Entries))
		}
		plants, err := opts.Plants(context.Background())
		if err != nil || len(plants) == 0 {
			t.Errorf("expected plants, got %v, %v", plants, err)
		}
		return nil
	})

	runTUI()

	if env.exitCode != 0 {
		t.Fatalf("unexpected exit %d: %s", env.exitCode, env.stderr.String())
	}
	if got.Translator == nil || got.Location == nil || got.Now == nil || got.Deleter == nil {
		t.Errorf("expected fully populated options, got %+v", got)
	}
	if !got.Now().Equal(testNow) {
		t.Errorf("expected app clock, got %v", got.Now())
	}
}

func TestRunTUI_Error(t *testing.T) {
	env := setupTest(t)
	swapRunProgram(t, func(tui.Options) error { return errors.New("no tty") })

	runTUI()

	if env.exitCode != 1 || !strings.Contains(env.stderr.String(), "Error running TUI: no tty") {
		t.Errorf("expected TUI error, exit=%d stderr=%q", env.exitCode, env.stderr.String())
	}
}
