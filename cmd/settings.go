package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/storage"
)

// langCmd represents the lang command
var langCmd = &cobra.Command{
	Use:   "lang [el|en]",
	Short: "Show or set the display language",
	Long: `Without an argument, print the active language. With one, store it as the
preferred language for later commands. The --lang flag overrides it for a
single command.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(i18n.Greek), string(i18n.English)},
	Run: func(cmd *cobra.Command, args []string) {
		lang := ""
		if len(args) == 1 {
			lang = args[0]
		}
		language(lang)
	},
}

// snapshotsCmd represents the snapshots command
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List the snapshots taken before changes",
	Long: `List the snapshots of the entry collection. A snapshot is taken before every
edit, delete, restore and rollback; the newest is #1.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listSnapshots()
	},
}

// rollbackCmd represents the rollback command
var rollbackCmd = &cobra.Command{
	Use:   "rollback [n]",
	Short: "Restore the entry collection from a snapshot",
	Long: `Replace the stored entries with snapshot n (default 1, the most recent).
The current entries are snapshotted first, so a rollback can be undone with
another rollback.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n := "1"
		if len(args) == 1 {
			n = args[0]
		}
		rollback(n)
	},
}

func init() {
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(rollbackCmd)
}

func languageName(t *i18n.Translator, lang i18n.Language) string {
	if lang == i18n.Greek {
		return t.T("greek")
	}
	return t.T("english")
}

// language prints or stores the language preference
func language(arg string) {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	if arg == "" {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("language", languageName(a.Translator, a.Lang())))
		return
	}

	lang, err := i18n.ParseLanguage(arg)
	if err != nil {
		fail(a, err)
		return
	}
	if err := a.SetLanguage(ctx, lang); err != nil {
		fail(a, err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, a.T("languageChanged", languageName(a.Translator, lang)))
}

// listSnapshots prints the available snapshots
func listSnapshots() {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	snapshots, err := a.Entries.Snapshots(ctx)
	if err != nil {
		fail(a, err)
		return
	}
	if len(snapshots) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("snapshotsNone"))
		return
	}
	for _, s := range snapshots {
		if s.Corrupt {
			_, _ = fmt.Fprintln(deps.Stdout, a.T("snapshotCorrupt", s.Number))
			continue
		}
		_, _ = fmt.Fprintln(deps.Stdout, a.T("snapshotLine", s.Number, s.Count))
	}
}

// rollback restores snapshot nStr
func rollback(nStr string) {
	n, err := strconv.Atoi(nStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid snapshot number '%s'. Must be between 1 and %d\n", nStr, storage.MaxSnapshots)
		deps.Exit(1)
		return
	}

	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	if err := a.Entries.Rollback(ctx, n); err != nil {
		fail(a, err)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, a.T("snapshotRestored", n))
}
