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
	"github.com/xolan/croplog/internal/timeutil"
	"github.com/xolan/croplog/internal/vocabulary"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new entry",
	Long: `Record a crop activity. The plant must be one of the built-in or custom
plants ('croplog plants'); the task can be any text.

Examples:
  croplog add --plant tomato --task Watering
  croplog add --plant Ντομάτα --task Πότισμα --date χθες
  croplog add --plant vine --task Pruning --date 2024-03-01 --notes 'north row'`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var opts addOptions
		opts.Date, _ = cmd.Flags().GetString("date")
		opts.Plant, _ = cmd.Flags().GetString("plant")
		opts.Task, _ = cmd.Flags().GetString("task")
		opts.Notes, _ = cmd.Flags().GetString("notes")
		addEntry(opts)
	},
}

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing entry",
	Long: `Change the date, plant, task or notes of an entry. The id may be any
unique prefix of the id shown by 'croplog'. At least one flag is required.

Examples:
  croplog edit 3f2a --task Harvest
  croplog edit 3f2a --date 2024-05-02 --notes ''`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var opts editOptions
		for name, dst := range map[string]**string{
			"date":  &opts.Date,
			"plant": &opts.Plant,
			"task":  &opts.Task,
			"notes": &opts.Notes,
		} {
			if cmd.Flags().Changed(name) {
				v, _ := cmd.Flags().GetString(name)
				*dst = &v
			}
		}
		editEntry(args[0], opts)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)

	addCmd.Flags().String("date", "today", "day of the activity")
	addCmd.Flags().StringP("plant", "p", "", "plant id or name (required)")
	addCmd.Flags().StringP("task", "t", "", "task performed (required)")
	addCmd.Flags().StringP("notes", "m", "", "optional notes")

	editCmd.Flags().String("date", "", "new day of the activity")
	editCmd.Flags().String("plant", "", "new plant id or name")
	editCmd.Flags().String("task", "", "new task")
	editCmd.Flags().String("notes", "", "new notes (empty clears them)")
}

type addOptions struct {
	Date  string
	Plant string
	Task  string
	Notes string
}

type editOptions struct {
	Date  *string
	Plant *string
	Task  *string
	Notes *string
}

// parseDay turns a date flag into the stored form.
func parseDay(a *app.App, input string) (string, error) {
	day, err := timeutil.ParseDateIn(input, a.Now(), a.Location)
	if err != nil {
		return "", apperr.Validation("%s", a.T("invalidDate", err.Error()))
	}
	return timeutil.StoredDate(day), nil
}

// knownPlant maps user input to a vocabulary plant.
func knownPlant(a *app.App, plants []vocabulary.Plant, input string) (vocabulary.Plant, error) {
	p, ok := matchPlant(plants, input)
	if !ok {
		return vocabulary.Plant{}, apperr.Validation("%s", a.T("unknownPlant", strings.TrimSpace(input)))
	}
	return p, nil
}

// addEntry validates opts and creates the entry
func addEntry(opts addOptions) {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	fields, plant, err := newFields(ctx, a, opts)
	if err != nil {
		fail(a, err)
		return
	}

	created, err := a.Repo.Create(ctx, fields)
	if err != nil {
		fail(a, err)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, a.T("entrySaved"))
	_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryLine(created, plant, a.Location))
}

func newFields(ctx context.Context, a *app.App, opts addOptions) (entry.Fields, vocabulary.Plant, error) {
	var missing []string
	if strings.TrimSpace(opts.Plant) == "" {
		missing = append(missing, "--plant")
	}
	if strings.TrimSpace(opts.Task) == "" {
		missing = append(missing, "--task")
	}
	if strings.TrimSpace(opts.Date) == "" {
		missing = append(missing, "--date")
	}
	if len(missing) > 0 {
		return entry.Fields{}, vocabulary.Plant{}, apperr.Validation("required: %s", strings.Join(missing, ", "))
	}

	date, err := parseDay(a, opts.Date)
	if err != nil {
		return entry.Fields{}, vocabulary.Plant{}, err
	}
	_, plants, err := plantResolver(ctx, a)
	if err != nil {
		return entry.Fields{}, vocabulary.Plant{}, err
	}
	plant, err := knownPlant(a, plants, opts.Plant)
	if err != nil {
		return entry.Fields{}, vocabulary.Plant{}, err
	}

	return entry.Fields{
		Date:  date,
		Plant: plant.ID,
		Task:  strings.TrimSpace(opts.Task),
		Notes: strings.TrimSpace(opts.Notes),
	}, plant, nil
}

// editEntry applies opts to the entry matching idPrefix
func editEntry(idPrefix string, opts editOptions) {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	if opts.Date == nil && opts.Plant == nil && opts.Task == nil && opts.Notes == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", a.T("noChanges"))
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: croplog edit <id> [--date D] [--plant P] [--task T] [--notes N]")
		deps.Exit(1)
		return
	}

	entries, err := loadEntries(ctx, a)
	if err != nil {
		fail(a, err)
		return
	}
	target, err := cli.FindByPrefix(entries, idPrefix)
	if err != nil {
		failLookup(a, err)
		return
	}

	resolve, plants, err := plantResolver(ctx, a)
	if err != nil {
		fail(a, err)
		return
	}

	var patch entry.Patch
	if opts.Date != nil {
		date, err := parseDay(a, *opts.Date)
		if err != nil {
			fail(a, err)
			return
		}
		patch.Date = &date
	}
	if opts.Plant != nil {
		p, err := knownPlant(a, plants, *opts.Plant)
		if err != nil {
			fail(a, err)
			return
		}
		patch.Plant = &p.ID
	}
	if opts.Task != nil {
		task := strings.TrimSpace(*opts.Task)
		if task == "" {
			fail(a, apperr.Validation("task cannot be empty"))
			return
		}
		patch.Task = &task
	}
	if opts.Notes != nil {
		notes := strings.TrimSpace(*opts.Notes)
		patch.Notes = &notes
	}

	updated, err := a.Repo.Update(ctx, target.ID, patch)
	if err != nil {
		fail(a, err)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, a.T("entryUpdated"))
	_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryLine(updated, resolve(updated.Plant), a.Location))
}
