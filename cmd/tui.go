package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/croplog/internal/tui"
	"github.com/xolan/croplog/internal/vocabulary"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for croplog.

Views available:
  - List: all entries, newest first, with a plant filter and delete
  - Calendar: a month grid with the entries of the selected day
  - By plant: entries grouped by plant

Keyboard shortcuts:
  - Tab/Shift+Tab or 1-3: switch views
  - j/k or arrows: move within a view
  - f: cycle the plant filter (list)
  - d: delete the selected entry (list)
  - p/n: previous/next month (calendar)
  - ?: show help
  - q: quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI opens the journal and runs the TUI until the user quits
func runTUI() {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	err := runProgram(tui.Options{
		Entries: a.Entries,
		Deleter: a.Repo,
		Plants: func(ctx context.Context) ([]vocabulary.Plant, error) {
			return a.Vocabulary.AllPlants(ctx, a.Lang())
		},
		Translator: a.Translator,
		Location:   a.Location,
		Now:        a.Now,
		Theme:      a.Config.TUI.Theme,
	})
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}

// runProgram is replaced in tests.
var runProgram = tui.Run
