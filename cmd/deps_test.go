package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeps_OpenAppUsesOwnConfigPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "language = \"en\"\ntimezone = \"UTC\"\n\n[storage]\nbackend = \"file\"\ndir = \"" + filepath.ToSlash(dir) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	d := DefaultDeps()
	d.ConfigPath = func() (string, error) { return path, nil }

	a, err := d.OpenApp(context.Background(), "")
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "UTC", a.Config.Timezone)
	assert.Equal(t, dir, a.Config.Storage.Dir)
}

func TestDefaultDeps_OpenAppConfigPathError(t *testing.T) {
	d := DefaultDeps()
	d.ConfigPath = func() (string, error) { return "", errors.New("no home") }

	_, err := d.OpenApp(context.Background(), "")
	assert.EqualError(t, err, "no home")
}

func TestResetDeps_RestoresDefaults(t *testing.T) {
	SetDeps(&Deps{})
	ResetDeps()

	assert.Equal(t, os.Stdout, deps.Stdout)
	assert.NotNil(t, deps.OpenApp)
	assert.NotNil(t, deps.ConfigPath)
}
