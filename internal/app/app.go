// Package app wires the storage, repository, vocabulary, backup and
// localisation components from a Config.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xolan/croplog/internal/backup"
	"github.com/xolan/croplog/internal/cloud"
	"github.com/xolan/croplog/internal/config"
	"github.com/xolan/croplog/internal/i18n"
	"github.com/xolan/croplog/internal/kv"
	"github.com/xolan/croplog/internal/logging"
	"github.com/xolan/croplog/internal/repository"
	"github.com/xolan/croplog/internal/storage"
	"github.com/xolan/croplog/internal/vocabulary"
)

// Options controls how an App is assembled.
type Options struct {
	Config config.Config
	// Lang is the --lang flag value; it wins over the stored preference.
	Lang string
	// Store replaces the backend named in Config.Storage.
	Store kv.Store
	// Logger replaces the logger built from Config.Log.
	Logger *zap.Logger
	Clock  func() time.Time
	NewID  func() string
}

// App holds the wired components for one command invocation.
type App struct {
	Config     config.Config
	Logger     *zap.Logger
	KV         kv.Store
	Entries    *storage.EntryStore
	Repo       *repository.Repository
	Vocabulary *vocabulary.Store
	Backup     *backup.Codec
	Preference *i18n.Preference
	Translator *i18n.Translator
	Location   *time.Location

	now func() time.Time
}

// Open builds an App. The caller must Close it.
func Open(ctx context.Context, opts Options) (*App, error) {
	cfg := opts.Config

	logger := opts.Logger
	if logger == nil {
		logger = logging.New(logging.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	store := opts.Store
	if store == nil {
		dir, err := cfg.DataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine data directory: %w", err)
		}
		store, err = kv.Open(ctx, cfg.Storage.Backend, dir)
		if err != nil {
			return nil, err
		}
		logger.Debug("storage opened", zap.String("backend", cfg.Storage.Backend), zap.String("dir", dir))
	}

	entries := storage.NewEntryStore(store, logger)
	repoOpts := []repository.Option{repository.WithClock(now), repository.WithLogger(logger)}
	if opts.NewID != nil {
		repoOpts = append(repoOpts, repository.WithIDGenerator(opts.NewID))
	}
	repo := repository.New(entries, repoOpts...)
	vocab := vocabulary.New(store, logger)
	codec := backup.New(repo, vocab,
		backup.WithClock(now),
		backup.WithLogger(logger),
		backup.WithSnapshotter(entries),
	)

	pref := i18n.NewPreference(store)
	stored, _, err := pref.Get(ctx)
	if err != nil {
		logger.Warn("failed to read language preference", zap.Error(err))
	}
	lang := i18n.Resolve(opts.Lang, stored, cfg.Language)

	return &App{
		Config:     cfg,
		Logger:     logger,
		KV:         store,
		Entries:    entries,
		Repo:       repo,
		Vocabulary: vocab,
		Backup:     codec,
		Preference: pref,
		Translator: i18n.New(lang),
		Location:   loc,
		now:        now,
	}, nil
}

// Lang returns the active language.
func (a *App) Lang() i18n.Language {
	return a.Translator.Lang()
}

// T translates key in the active language.
func (a *App) T(key string, args ...any) string {
	return a.Translator.T(key, args...)
}

// Now returns the current time from the configured clock.
func (a *App) Now() time.Time {
	return a.now()
}

// SetLanguage stores lang as the preference and switches the translator.
func (a *App) SetLanguage(ctx context.Context, lang i18n.Language) error {
	if err := a.Preference.Set(ctx, lang); err != nil {
		return err
	}
	a.Translator = i18n.New(lang)
	return nil
}

// Cloud returns the S3 backup store, or cloud.ErrNotConfigured when no
// bucket is set.
func (a *App) Cloud(ctx context.Context) (*cloud.Store, error) {
	s3 := a.Config.S3
	return cloud.New(ctx, cloud.Config{
		Bucket:    s3.Bucket,
		Region:    s3.Region,
		Endpoint:  s3.Endpoint,
		AccessKey: s3.AccessKey,
		SecretKey: s3.SecretKey,
		Prefix:    s3.Prefix,
	})
}

// Close releases the storage backend and flushes the logger.
func (a *App) Close() error {
	_ = a.Logger.Sync()
	return a.KV.Close()
}
