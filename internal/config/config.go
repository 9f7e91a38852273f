package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/kv"
	"github.com/xolan/croplog/internal/logging"
	"github.com/xolan/croplog/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "croplog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DataDirName is the directory under the config directory holding stored data
	DataDirName = "data"
)

// Config represents the application configuration
type Config struct {
	// Language is the interface language used when no preference is stored (el or en)
	Language string `toml:"language" env:"CROPLOG_LANGUAGE"`
	// Timezone defines the timezone calendar days are shown in (IANA timezone name, e.g., "Europe/Athens")
	Timezone string `toml:"timezone" env:"CROPLOG_TIMEZONE"`

	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	S3      S3Config      `toml:"s3"`
	TUI     TUIConfig     `toml:"tui"`
}

// StorageConfig selects where entries and vocabularies are kept.
type StorageConfig struct {
	// Backend is one of file, sqlite, bolt or memory
	Backend string `toml:"backend" env:"CROPLOG_STORAGE_BACKEND"`
	// Dir overrides the data directory; empty uses <config dir>/croplog/data
	Dir string `toml:"dir" env:"CROPLOG_STORAGE_DIR"`
}

// LogConfig configures diagnostic logging on stderr.
type LogConfig struct {
	Level    string `toml:"level" env:"CROPLOG_LOG_LEVEL"`
	Encoding string `toml:"encoding" env:"CROPLOG_LOG_ENCODING"`
}

// TUIConfig configures the terminal UI.
type TUIConfig struct {
	// Theme is a bubbletint theme id such as "nord"; empty uses the built-in colours
	Theme string `toml:"theme" env:"CROPLOG_TUI_THEME"`
}

// S3Config configures the optional backup bucket.
type S3Config struct {
	Bucket    string `toml:"bucket" env:"CROPLOG_S3_BUCKET"`
	Region    string `toml:"region" env:"CROPLOG_S3_REGION"`
	Endpoint  string `toml:"endpoint" env:"CROPLOG_S3_ENDPOINT"`
	AccessKey string `toml:"access_key" env:"CROPLOG_S3_ACCESS_KEY"`
	SecretKey string `toml:"secret_key" env:"CROPLOG_S3_SECRET_KEY"`
	Prefix    string `toml:"prefix" env:"CROPLOG_S3_PREFIX"`
}

// DefaultConfig returns a Config with the defaults used when no file exists.
// - language: "el"
// - timezone: "Local" (use system local timezone)
// - storage.backend: "file"
// - log.level: "warn", log.encoding: "console"
func DefaultConfig() Config {
	return Config{
		Language: string(i18n.Default),
		Timezone: "Local",
		Storage:  StorageConfig{Backend: kv.BackendFile},
		Log:      LogConfig{Level: logging.DefaultLevel, Encoding: logging.DefaultEncoding},
	}
}

// Normalize lower-cases and trims the enumerated fields in place.
func (c *Config) Normalize() {
	c.Language = strings.ToLower(strings.TrimSpace(c.Language))
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Storage.Dir = strings.TrimSpace(c.Storage.Dir)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Encoding = strings.ToLower(strings.TrimSpace(c.Log.Encoding))
	c.S3.Bucket = strings.TrimSpace(c.S3.Bucket)
	c.S3.Endpoint = strings.TrimSpace(c.S3.Endpoint)
	c.TUI.Theme = strings.ToLower(strings.TrimSpace(c.TUI.Theme))
}

// Validate checks the configuration. Call Normalize first.
func (c *Config) Validate() error {
	if c.Language != "" {
		if _, err := i18n.ParseLanguage(c.Language); err != nil {
			return fmt.Errorf("invalid language %q: must be 'el' or 'en'", c.Language)
		}
	}

	if c.Timezone != "" && c.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}

	if c.Storage.Backend != "" {
		valid := false
		for _, b := range kv.Backends() {
			if c.Storage.Backend == b {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid storage.backend %q: must be one of %s",
				c.Storage.Backend, strings.Join(kv.Backends(), ", "))
		}
	}

	if c.Log.Level != "" && !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("invalid log.level %q: must be debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Encoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log.encoding %q: must be 'console' or 'json'", c.Log.Encoding)
	}

	if c.S3.Bucket == "" && c.S3.Endpoint != "" {
		return fmt.Errorf("invalid s3 settings: endpoint %q is set without a bucket", c.S3.Endpoint)
	}
	return nil
}

// Load reads the TOML file at path over the defaults, applies CROPLOG_*
// environment overrides, then normalizes and validates the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadOrDefault behaves like Load but falls back to the defaults (plus
// environment overrides) when path does not exist. Other stat errors are
// returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return finish(DefaultConfig())
		}
		return Config{}, fmt.Errorf("failed to access config file %s: %w", path, err)
	}
	return Load(path)
}

func finish(cfg Config) (Config, error) {
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	appDir, err := osutil.AppDir(AppName)
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// DataDir returns the directory holding stored data, creating the default
// one if needed.
func (c Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	return osutil.AppDir(AppName, DataDirName)
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// GenerateSampleConfig returns a commented config file listing every option.
func GenerateSampleConfig() string {
	return `# croplog configuration file
#
# Every setting is optional. Uncomment a line to change its default.
# Any value can also be set through the environment, e.g. CROPLOG_LANGUAGE=en.

# Interface language when none was chosen with 'croplog lang': el or en
# language = "el"

# Timezone calendar days are shown in. Examples: Local, Europe/Athens,
# Europe/London, America/New_York, Asia/Tokyo
# timezone = "Local"

[storage]
# Where entries are kept: file, sqlite, bolt or memory
# backend = "file"
# Data directory (defaults to <config dir>/croplog/data)
# dir = ""

[log]
# Diagnostic messages on stderr: debug, info, warn or error
# level = "warn"
# console or json
# encoding = "console"

[s3]
# Optional bucket for 'croplog export --s3' and 'croplog import --s3'
# bucket = ""
# region = "eu-central-1"
# endpoint = "http://localhost:9000"
# access_key = ""
# secret_key = ""
# prefix = "backups"

[tui]
# Colour theme for 'croplog tui', any bubbletint id (e.g. nord, dracula);
# empty keeps the built-in green palette
# theme = ""
`
}
