package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/croplog/internal/app"
	"github.com/xolan/croplog/internal/cli"
	"github.com/xolan/croplog/internal/vocabulary"
)

// plantsCmd represents the plants command
var plantsCmd = &cobra.Command{
	Use:   "plants",
	Short: "List the plants available for entries",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listPlants()
	},
}

// plantsAddCmd represents the plants add command
var plantsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom plant",
	Long: `Add a custom plant. Its id is the lower-cased name with spaces replaced
by underscores; neither id nor name may clash with an existing plant.

--color takes #RRGGBB or one of: green, red, blue, orange, purple, brown,
pink, yellow. --icon takes any short glyph.

Examples:
  croplog plants add Okra
  croplog plants add 'Sweet basil' --color green --icon 🌿`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		color, _ := cmd.Flags().GetString("color")
		icon, _ := cmd.Flags().GetString("icon")
		addPlant(strings.Join(args, " "), color, icon)
	},
}

// tasksCmd represents the tasks command
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the suggested tasks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listTasks()
	},
}

// tasksAddCmd represents the tasks add command
var tasksAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom task",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addTask(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(plantsCmd)
	rootCmd.AddCommand(tasksCmd)
	plantsCmd.AddCommand(plantsAddCmd)
	tasksCmd.AddCommand(tasksAddCmd)

	plantsAddCmd.Flags().String("color", vocabulary.Palette[0].Value, "plant colour")
	plantsAddCmd.Flags().String("icon", vocabulary.Icons[0], "plant icon")
}

// paletteColor maps a palette name (English or translated) to its hex value.
// Anything else is passed through for validation by the vocabulary store.
func paletteColor(a *app.App, input string) string {
	input = strings.TrimSpace(input)
	for _, s := range vocabulary.Palette {
		name := strings.TrimPrefix(s.Key, "color")
		if strings.EqualFold(input, name) || strings.EqualFold(input, a.T(s.Key)) {
			return s.Value
		}
	}
	return input
}

// listPlants prints built-in and custom plants
func listPlants() {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	custom, err := a.Vocabulary.CustomPlants(ctx)
	if err != nil {
		fail(a, err)
		return
	}

	for _, p := range vocabulary.BuiltinPlants(a.Lang()) {
		_, _ = fmt.Fprintf(deps.Stdout, "%-12s %s  %s\n", p.ID, cli.PlantLabel(p), cli.Dim(a.T("builtin")))
	}
	for _, p := range custom {
		_, _ = fmt.Fprintf(deps.Stdout, "%-12s %s  %s\n", p.ID, cli.PlantLabel(p), cli.Dim(a.T("custom")))
	}
}

// addPlant stores a custom plant
func addPlant(name, color, icon string) {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	plant, err := a.Vocabulary.AddCustomPlant(ctx, a.Lang(), vocabulary.PlantInput{
		Name:  name,
		Color: paletteColor(a, color),
		Icon:  icon,
	})
	if err != nil {
		fail(a, err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, a.T("plantAdded", cli.PlantLabel(plant)))
}

// listTasks prints built-in and custom tasks
func listTasks() {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	custom, err := a.Vocabulary.CustomTasks(ctx)
	if err != nil {
		fail(a, err)
		return
	}
	for _, t := range vocabulary.BuiltinTasks(a.Lang()) {
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s\n", t, cli.Dim(a.T("builtin")))
	}
	for _, t := range custom {
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s\n", t, cli.Dim(a.T("custom")))
	}
}

// addTask stores a custom task
func addTask(name string) {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	task, err := a.Vocabulary.AddCustomTask(ctx, a.Lang(), name)
	if err != nil {
		fail(a, err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, a.T("taskAdded", task))
}
