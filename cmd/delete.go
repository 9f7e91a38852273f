package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/croplog/internal/app"
	"github.com/xolan/croplog/internal/cli"
)

var yesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry by id",
	Long: `Delete a crop entry by its id or a unique id prefix.
A confirmation prompt will be shown unless --yes is specified.
The collection is snapshotted first, so 'croplog rollback' can undo it.

Example:
  croplog delete 3f2a
  croplog delete 3f2a --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(args[0], yesFlag)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
}

// deleteEntry handles the deletion of a crop entry
func deleteEntry(idPrefix string, skipConfirm bool) {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

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

	plant, err := a.Vocabulary.ResolvePlant(ctx, a.Lang(), target.Plant)
	if err != nil {
		fail(a, err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, cli.FormatEntryDetail(a.Translator, target, plant, a.Location))
	_, _ = fmt.Fprintln(deps.Stdout)

	if !skipConfirm && !promptConfirmation(a) {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("deleteCanceled"))
		return
	}

	if err := a.Repo.Delete(ctx, target.ID); err != nil {
		fail(a, err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, a.T("entryDeleted"))
}

// promptConfirmation asks the user to confirm deletion
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptConfirmation(a *app.App) bool {
	_, _ = fmt.Fprint(deps.Stdout, a.T("confirmDelete"))

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
