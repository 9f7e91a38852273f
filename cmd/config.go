package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/croplog/internal/config"
	"github.com/xolan/croplog/internal/tui/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display configuration settings",
	Long: `Display the current effective configuration settings for croplog.

Shows the configuration file location, whether it exists, and all current settings.
Values come from the config file, then CROPLOG_* environment variables, over
these defaults:
  - language: el
  - timezone: Local (system timezone)
  - storage.backend: file (also: sqlite, bolt, memory)
  - log.level: warn

Examples:
  croplog config                     Show all current settings
  croplog config --sample            Print a commented sample config.toml

Configuration file location:
  ~/.config/croplog/config.toml      Linux
  %APPDATA%\croplog\config.toml      Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sample, _ := cmd.Flags().GetBool("sample")
		if sample {
			_, _ = fmt.Fprint(deps.Stdout, config.GenerateSampleConfig())
			return
		}
		showConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("sample", false, "print a sample configuration file")
}

// themeLabel names the theme the TUI will use for the configured one.
func themeLabel(name string) string {
	if name == "" {
		return "(built-in)"
	}
	current := ui.NewThemeProvider(name).CurrentName()
	if current != name {
		return fmt.Sprintf("%s (%q not found)", current, name)
	}
	return current
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		_, _ = fmt.Fprintln(deps.Stderr, "Valid language values: el, en")
		_, _ = fmt.Fprintln(deps.Stderr, "Valid timezone examples: Local, UTC, Europe/Athens")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for croplog")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	dataDir, err := cfg.DataDir()
	if err != nil {
		dataDir = fmt.Sprintf("(unavailable: %v)", err)
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Language:        %s\n", orDefault(cfg.Language, "(stored preference)"))
	_, _ = fmt.Fprintf(deps.Stdout, "Timezone:        %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "Storage:         %s\n", cfg.Storage.Backend)
	_, _ = fmt.Fprintf(deps.Stdout, "Data directory:  %s\n", dataDir)
	_, _ = fmt.Fprintf(deps.Stdout, "Log level:       %s (%s)\n", cfg.Log.Level, cfg.Log.Encoding)
	_, _ = fmt.Fprintf(deps.Stdout, "TUI theme:       %s\n", themeLabel(cfg.TUI.Theme))
	if cfg.S3.Bucket == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "S3 backups:      (not configured)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "S3 backups:      s3://%s/%s\n", cfg.S3.Bucket, cfg.S3.Prefix)
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'croplog config --sample' for a starting config.toml.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}
