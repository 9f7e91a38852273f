package cmd

import (
	"context"
	"io"
	"os"

	"github.com/xolan/croplog/internal/app"
	"github.com/xolan/croplog/internal/config"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Exit       func(code int)
	ConfigPath func() (string, error)
	// OpenApp assembles the components for one command; lang is the --lang flag.
	OpenApp func(ctx context.Context, lang string) (*app.App, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	d := &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		ConfigPath: config.GetConfigPath,
	}
	d.OpenApp = d.openConfiguredApp
	return d
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// openConfiguredApp loads the config file, if any, and opens the configured backend.
func (d *Deps) openConfiguredApp(ctx context.Context, lang string) (*app.App, error) {
	path, err := d.ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	return app.Open(ctx, app.Options{Config: cfg, Lang: lang})
}
