package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/croplog/internal/app"
	"github.com/xolan/croplog/internal/apperr"
	"github.com/xolan/croplog/internal/cli"
	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/filter"
	"github.com/xolan/croplog/internal/timeutil"
	"github.com/xolan/croplog/internal/vocabulary"
)

// langFlag is the persistent --lang override.
var langFlag string

var rootCmd = &cobra.Command{
	Use:   "croplog",
	Short: "A crop journal for the terminal",
	Long: `croplog records gardening and farming work: which plant, which task, on
which day, with optional notes.

Usage:
  croplog                                        List all entries, newest first
  croplog --plant tomato --last 30               List filtered entries
  croplog add --plant tomato --task Watering     Record an entry for today
  croplog edit <id> --notes 'text'               Change an entry
  croplog delete <id>                            Delete an entry (with confirmation)
  croplog grouped                                List entries grouped by plant
  croplog stats --last 30                        Entry counts per plant and task
  croplog calendar [YYYY-MM]                     Show a month calendar
  croplog export / import <file>                 Back up and restore as JSON
  croplog tui                                    Browse entries interactively

Dates are written YYYY-MM-DD or DD/MM/YYYY; the words today and yesterday
(σήμερα, χθες) are accepted too. Entry ids may be shortened to any unique prefix.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(listOptionsFromFlags(cmd))
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check stored data health",
	Long:  `Validate the stored entry collection and report readable entries, missing fields, duplicate ids and available snapshots.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		validateStorage()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "display language (el, en); overrides the stored preference")
	addFilterFlags(rootCmd)
	rootCmd.AddCommand(validateCmd)
}

// addFilterFlags registers the entry filter flags on cmd.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("plant", "", "only entries for this plant (id or name)")
	cmd.Flags().String("task", "", "only entries with this task")
	cmd.Flags().String("keyword", "", "only entries whose notes contain this text")
	cmd.Flags().String("from", "", "start date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().String("to", "", "end date (YYYY-MM-DD or DD/MM/YYYY)")
	cmd.Flags().Int("last", 0, "only the last N days, including today")
}

// listOptions holds the raw filter flag values.
type listOptions struct {
	Plant   string
	Task    string
	Keyword string
	From    string
	To      string
	Last    int
}

func listOptionsFromFlags(cmd *cobra.Command) listOptions {
	var opts listOptions
	opts.Plant, _ = cmd.Flags().GetString("plant")
	opts.Task, _ = cmd.Flags().GetString("task")
	opts.Keyword, _ = cmd.Flags().GetString("keyword")
	opts.From, _ = cmd.Flags().GetString("from")
	opts.To, _ = cmd.Flags().GetString("to")
	opts.Last, _ = cmd.Flags().GetInt("last")
	return opts
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"croplog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// openApp opens the components for a command. On failure it reports the
// error and returns nil; the caller must stop.
func openApp(ctx context.Context) *app.App {
	a, err := deps.OpenApp(ctx, langFlag)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open the crop journal")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'croplog config' to check the configuration")
		deps.Exit(1)
		return nil
	}
	return a
}

// fail reports err in the active language and exits with status 1.
func fail(a *app.App, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", cli.ErrorMessage(a.Translator, err))
	_, _ = fmt.Fprintln(deps.Stderr, a.T("details", err))
	deps.Exit(1)
}

// failLookup is fail for an id prefix lookup; when nothing matched it points
// at the list command.
func failLookup(a *app.App, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", cli.ErrorMessage(a.Translator, err))
	_, _ = fmt.Fprintln(deps.Stderr, a.T("details", err))
	if apperr.IsKind(err, apperr.KindNotFound) {
		_, _ = fmt.Fprintln(deps.Stderr, a.T("listHint"))
	}
	deps.Exit(1)
}

// plantResolver returns the lookup for plant ids in the active language.
func plantResolver(ctx context.Context, a *app.App) (func(string) vocabulary.Plant, []vocabulary.Plant, error) {
	plants, err := a.Vocabulary.AllPlants(ctx, a.Lang())
	if err != nil {
		return nil, nil, err
	}
	return vocabulary.Resolver(plants), plants, nil
}

// matchPlant finds the plant whose id or display name equals input, ignoring case.
func matchPlant(plants []vocabulary.Plant, input string) (vocabulary.Plant, bool) {
	input = strings.TrimSpace(input)
	for _, p := range plants {
		if p.ID == input || strings.EqualFold(p.Name, input) || p.ID == vocabulary.DeriveID(input) {
			return p, true
		}
	}
	return vocabulary.Plant{}, false
}

// buildFilter turns flag values into a filter. An unknown plant is used as a raw id.
func buildFilter(a *app.App, plants []vocabulary.Plant, opts listOptions) (filter.Filter, error) {
	start, end, err := timeutil.ParseDateRangeFlags(opts.From, opts.To, opts.Last, a.Now(), a.Location)
	if err != nil {
		return filter.Filter{}, err
	}
	f := filter.Filter{
		Plant:   strings.TrimSpace(opts.Plant),
		Task:    strings.TrimSpace(opts.Task),
		Keyword: strings.TrimSpace(opts.Keyword),
	}
	if p, ok := matchPlant(plants, opts.Plant); ok {
		f.Plant = p.ID
	}
	if opts.From != "" || opts.To != "" || opts.Last > 0 {
		f.From, f.To = start, end
	}
	return f, nil
}

// loadEntries reads the collection newest first, printing any corruption warning.
func loadEntries(ctx context.Context, a *app.App) ([]entry.CropEntry, error) {
	result, err := a.Entries.LoadWithWarnings(ctx)
	if err != nil {
		return nil, err
	}
	if result.Warning != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %s\n", a.T("storageCorrupted"))
		_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(*result.Warning))
		_, _ = fmt.Fprintln(deps.Stderr)
	}
	entry.SortByDateDesc(result.Entries)
	return result.Entries, nil
}

// listEntries prints the entries matching opts, newest first.
func listEntries(opts listOptions) {
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

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("noEntries"))
		_, _ = fmt.Fprintln(deps.Stdout, a.T("noEntriesHint"))
		return
	}

	filtered := f.Apply(entries)
	if len(filtered) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("noEntriesWithFilters"))
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, cli.Heading(a.T("welcome")))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, e := range filtered {
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryLine(e, resolve(e.Plant), a.Location))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintln(deps.Stdout, a.T("entryCount", len(filtered)))
}

// validateStorage reports on the stored collection's health
func validateStorage() {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	health, err := a.Entries.Health(ctx)
	if err != nil {
		fail(a, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Storage backend: %s\n", a.Config.Storage.Backend)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	switch {
	case health.Warning != nil:
		_, _ = fmt.Fprintln(deps.Stdout, a.T("healthCorrupt", health.Warning.Error))
		_, _ = fmt.Fprintln(deps.Stdout, cli.FormatCorruptionWarning(*health.Warning))
	case !health.Exists:
		_, _ = fmt.Fprintln(deps.Stdout, a.T("healthEmpty"))
	default:
		_, _ = fmt.Fprintln(deps.Stdout, a.T("healthOK", health.Entries))
	}
	if health.MissingFields > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("healthMissing", health.MissingFields))
	}
	if health.DuplicateIDs > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("healthDuplicates", health.DuplicateIDs))
	}
	_, _ = fmt.Fprintln(deps.Stdout, a.T("healthSnapshots", health.Snapshots))

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.Healthy() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Stored data is healthy")
	} else {
		_, _ = fmt.Fprintln(deps.Stderr, "Status: ⚠ Stored data needs attention (see 'croplog rollback')")
	}
}
