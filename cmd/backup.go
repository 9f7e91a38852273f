package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xolan/croplog/internal/app"
	"github.com/xolan/croplog/internal/backup"
	"github.com/xolan/croplog/internal/cli"
	"github.com/xolan/croplog/internal/cloud"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Back up entries and custom plants/tasks as JSON",
	Long: `Write a JSON backup holding every entry and the custom plants and tasks.

By default the file is named crop_backup_YYYY-MM-DD.json in the current
directory. Use -o - to write to standard output, --legacy for a bare array
of entries, and --s3 to also upload the backup to the configured bucket.

Examples:
  croplog export
  croplog export -o backup.json
  croplog export -o - > backup.json
  croplog export --s3`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var opts exportOptions
		opts.Output, _ = cmd.Flags().GetString("output")
		opts.Legacy, _ = cmd.Flags().GetBool("legacy")
		opts.S3, _ = cmd.Flags().GetBool("s3")
		exportBackup(opts)
	},
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Restore a JSON backup",
	Long: `Restore entries from a backup written by 'croplog export' or from a bare
array of entries. Restored entries get new ids and are added to the existing
ones. A full backup also replaces the custom plants and tasks.

Examples:
  croplog import crop_backup_2024-05-01.json
  cat backup.json | croplog import -
  croplog import --s3 crop_backup_2024-05-01.json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var opts importOptions
		if len(args) == 1 {
			opts.Path = args[0]
		}
		opts.S3Key, _ = cmd.Flags().GetString("s3")
		importBackup(opts)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringP("output", "o", "", "output file, or - for standard output")
	exportCmd.Flags().Bool("legacy", false, "write only the entries as a JSON array")
	exportCmd.Flags().Bool("s3", false, "also upload the backup to the configured S3 bucket")

	importCmd.Flags().String("s3", "", "restore this object from the configured S3 bucket instead of a file")
}

type exportOptions struct {
	Output string
	Legacy bool
	S3     bool
}

type importOptions struct {
	Path  string
	S3Key string
}

// exportBackup writes a backup to a file, stdout, and optionally S3
func exportBackup(opts exportOptions) {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	data, err := encodeBackup(ctx, a, opts.Legacy)
	if err != nil {
		backupFailed(a, err)
		return
	}

	name := backup.FileName(a.Now())
	switch opts.Output {
	case "-":
		if _, err := deps.Stdout.Write(data); err != nil {
			backupFailed(a, err)
			return
		}
	default:
		path := opts.Output
		if path == "" {
			path = name
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			backupFailed(a, err)
			return
		}
		_, _ = fmt.Fprintln(deps.Stderr, a.T("backupSuccess"))
		_, _ = fmt.Fprintln(deps.Stderr, a.T("backupSaved", path))
	}

	if opts.S3 {
		store, err := a.Cloud(ctx)
		if errors.Is(err, cloud.ErrNotConfigured) {
			cloudFailed(a, err)
			return
		}
		if err != nil {
			backupFailed(a, err)
			return
		}
		key, err := store.Upload(ctx, name, data)
		if err != nil {
			backupFailed(a, err)
			return
		}
		_, _ = fmt.Fprintln(deps.Stderr, a.T("backupUploaded", store.Bucket(), key))
	}
}

func encodeBackup(ctx context.Context, a *app.App, legacy bool) ([]byte, error) {
	if legacy {
		entries, err := a.Backup.ExportEntries(ctx)
		if err != nil {
			return nil, err
		}
		return backup.Marshal(entries)
	}
	doc, err := a.Backup.Export(ctx)
	if err != nil {
		return nil, err
	}
	return backup.Marshal(doc)
}

// importBackup restores a backup from a file, stdin, or S3
func importBackup(opts importOptions) {
	ctx := context.Background()
	a := openApp(ctx)
	if a == nil {
		return
	}
	defer func() { _ = a.Close() }()

	if opts.Path == "" && opts.S3Key == "" {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Missing backup source")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: croplog import <file|-> or croplog import --s3 <key>")
		deps.Exit(1)
		return
	}

	data, err := readBackup(ctx, a, opts)
	if err != nil {
		if errors.Is(err, cloud.ErrNotConfigured) {
			cloudFailed(a, err)
			return
		}
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", a.T("fileReadError"))
		_, _ = fmt.Fprintln(deps.Stderr, a.T("details", err))
		deps.Exit(1)
		return
	}

	result, err := a.Backup.Import(ctx, data)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %s: %s\n", a.T("restoreError"), cli.ErrorMessage(a.Translator, err))
		_, _ = fmt.Fprintln(deps.Stderr, a.T("details", err))
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, a.T("restoreSuccess", result.Restored))
	if result.Skipped > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("restoreSkipped", result.Skipped))
	}
	if result.VocabularyReplaced {
		_, _ = fmt.Fprintln(deps.Stdout, a.T("restoreVocabulary"))
	}
}

func readBackup(ctx context.Context, a *app.App, opts importOptions) ([]byte, error) {
	switch {
	case opts.S3Key != "":
		store, err := a.Cloud(ctx)
		if err != nil {
			return nil, err
		}
		return store.Download(ctx, opts.S3Key)
	case opts.Path == "-":
		return io.ReadAll(deps.Stdin)
	default:
		return os.ReadFile(opts.Path)
	}
}

func backupFailed(a *app.App, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", a.T("backupError"))
	_, _ = fmt.Fprintln(deps.Stderr, a.T("details", err))
	deps.Exit(1)
}

func cloudFailed(a *app.App, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", a.T("s3NotConfigured"))
	_, _ = fmt.Fprintln(deps.Stderr, a.T("details", err))
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Set [s3] bucket in the config file or CROPLOG_S3_BUCKET")
	deps.Exit(1)
}
