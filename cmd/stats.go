package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/croplog/internal/cli"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/stats"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show entry counts per plant and task",
	Long: `Summarise the journal: how many entries, on how many days, and how they
split across plants and tasks. The filter flags of 'croplog' apply.

Examples:
  croplog stats
  croplog stats --last 30
  croplog stats --plant tomato`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStats(listOptionsFromFlags(cmd))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addFilterFlags(statsCmd)
}

// showStats prints statistics for the entries matching opts
func showStats(opts listOptions) {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	resolve, plants, err := plantResolver(ctx, a)
	if err != nil {
		fail(a, err)
		return
	}
	f, err := buildFilter(a, plants, opts)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	entries, err := loadEntries(ctx, a)
	if err != nil {
		fail(a, err)
		return
	}
	entries = f.Apply(entries)
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("noEntriesToView"))
		return
	}

	s := stats.CalculateStatistics(entries, a.Location)
	_, _ = fmt.Fprintln(deps.Stdout, cli.Heading(a.T("statistics")))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 40))
	_, _ = fmt.Fprintln(deps.Stdout, a.T("statsEntries", s.EntryCount))
	_, _ = fmt.Fprintln(deps.Stdout, a.T("statsDays", s.DaysWithEntries))
	_, _ = fmt.Fprintln(deps.Stdout, a.T("statsPlants", s.PlantCount))
	if !s.First.IsZero() {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("statsSpan",
			s.First.In(a.Location).Format(i18n.DateLayout),
			s.Last.In(a.Location).Format(i18n.DateLayout)))
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, cli.Heading(a.T("statsByPlant")))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
	for _, b := range stats.CalculatePlantBreakdown(entries) {
		line := fmt.Sprintf("  %4d  %s", b.EntryCount, cli.PlantLabel(resolve(b.Plant)))
		if !b.Last.IsZero() {
			line += "  " + cli.Dim(a.T("statsLast", b.Last.In(a.Location).Format(i18n.DateLayout)))
		}
		_, _ = fmt.Fprintln(deps.Stdout, line)
	}

	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, cli.Heading(a.T("statsByTask")))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
	for _, b := range stats.CalculateTaskBreakdown(entries) {
		_, _ = fmt.Fprintf(deps.Stdout, "  %4d  %s\n", b.EntryCount, b.Task)
	}
}
