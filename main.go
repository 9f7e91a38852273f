package main

import (
	"fmt"
	"os"

	"github.com/xolan/croplog/cmd"
	"github.com/xolan/croplog/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaced in tests.
var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run validates the configuration and executes the root command, returning
// the process exit code.
func run() int {
	cmd.SetVersionInfo(version, commit, date)

	path, err := config.GetConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to determine config file location: %v\n", err)
		return 1
	}
	if _, err := config.LoadOrDefault(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid configuration: %v\n", err)
		fmt.Fprintln(os.Stderr, "Hint: Run 'croplog config --sample' to see the valid settings")
		return 1
	}

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
