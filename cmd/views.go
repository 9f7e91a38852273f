package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xolan/croplog/internal/cli"
	"github.com/xolan/croplog/internal/grouping"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/timeutil"
)

// groupedCmd represents the grouped command
var groupedCmd = &cobra.Command{
	Use:   "grouped",
	Short: "List entries grouped by plant",
	Long: `List entries grouped by plant. Plants appear in the order of their most
recent entry; within a plant, entries are newest first. The filter flags of
'croplog' apply.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showGrouped(listOptionsFromFlags(cmd))
	},
}

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Show a month calendar of entries",
	Long: `Show a Monday-first calendar for a month, marking days with entries, followed
by the entries of each marked day. Defaults to the current month.

Examples:
  croplog calendar
  croplog calendar 2024-05
  croplog calendar 05/2024`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		month := ""
		if len(args) == 1 {
			month = args[0]
		}
		showCalendar(month)
	},
}

func init() {
	rootCmd.AddCommand(groupedCmd)
	rootCmd.AddCommand(calendarCmd)
	addFilterFlags(groupedCmd)
}

// showGrouped prints the filtered entries grouped by plant
func showGrouped(opts listOptions) {
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

	groups := grouping.ByPlant(f.Apply(entries), resolve)
	if len(groups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("noEntriesToView"))
		return
	}

	for i, g := range groups {
		if i > 0 {
			_, _ = fmt.Fprintln(deps.Stdout)
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s\n",
			cli.PlantStyle(g.Plant).Bold(true).Render(cli.PlantLabel(g.Plant)),
			cli.Dim("("+a.T("entryCount", len(g.Entries))+")"))
		for _, e := range g.Entries {
			date := timeutil.FormatDate(e.Date, a.Location, i18n.DateLayout)
			_, _ = fmt.Fprintf(deps.Stdout, "  %s  %s  %s\n", cli.Dim("["+cli.ShortID(e.ID)+"]"), date, e.Task)
			if e.Notes != "" {
				_, _ = fmt.Fprintf(deps.Stdout, "%s%s\n", strings.Repeat(" ", cli.ShortIDLength+6), cli.Dim(e.Notes))
			}
		}
	}
}

// showCalendar prints the month grid and the entries of each day
func showCalendar(monthArg string) {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	month, err := timeutil.ParseMonth(monthArg, a.Now(), a.Location)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	resolve, _, err := plantResolver(ctx, a)
	if err != nil {
		fail(a, err)
		return
	}
	entries, err := loadEntries(ctx, a)
	if err != nil {
		fail(a, err)
		return
	}

	days := grouping.Month(entries, month.Year(), month.Month(), a.Location)
	_, _ = fmt.Fprint(deps.Stdout, renderMonth(a.Lang(), month, days, a.Now().In(a.Location)))
	_, _ = fmt.Fprintln(deps.Stdout)

	if len(days) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("noEntriesThisMonth"))
		return
	}
	for _, d := range days {
		_, _ = fmt.Fprintln(deps.Stdout, cli.Heading(a.T("entriesForDay", d.Date.Format(i18n.DateLayout))))
		for _, e := range d.Entries {
			_, _ = fmt.Fprintln(deps.Stdout, "  "+cli.FormatEntryLine(e, resolve(e.Plant), a.Location))
		}
	}
}

// renderMonth draws a plain-text month grid. Days with entries carry a '*'.
func renderMonth(lang i18n.Language, month time.Time, days []grouping.Day, today time.Time) string {
	marked := make(map[int]bool, len(days))
	for _, d := range days {
		marked[d.Date.Day()] = true
	}

	var b strings.Builder
	title := fmt.Sprintf("%s %d", i18n.MonthName(lang, month.Month()), month.Year())
	b.WriteString(cli.Heading(title))
	b.WriteString("\n")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(&b, "%4s", i18n.WeekdayShort(lang, time.Weekday((i+1)%7)))
	}
	b.WriteString("\n")

	for _, week := range grouping.Weeks(month.Year(), month.Month(), month.Location()) {
		for _, d := range week {
			if d.Month() != month.Month() {
				b.WriteString("    ")
				continue
			}
			mark := " "
			switch {
			case marked[d.Day()]:
				mark = "*"
			case d.Year() == today.Year() && d.YearDay() == today.YearDay():
				mark = "<"
			}
			fmt.Fprintf(&b, "%3d%s", d.Day(), mark)
		}
		b.WriteString("\n")
	}
	return b.String()
}
