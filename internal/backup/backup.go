// Package backup exports the user's data to a self-describing JSON document
// and restores it from either that document or a bare array of entries.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/xolan/croplog/internal/apperr"
	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/vocabulary"
)

// Version is the format version written into every document.
const Version = "1.0.0"

// FileNamePrefix and FileNameExt frame the date in backup file names.
const (
	FileNamePrefix = "crop_backup_"
	FileNameExt    = ".json"
)

// Document is the full backup format.
type Document struct {
	Entries      []entry.CropEntry  `json:"entries"`
	CustomPlants []vocabulary.Plant `json:"customPlants"`
	CustomTasks  []string           `json:"customTasks"`
	Timestamp    string             `json:"timestamp"`
	Version      string             `json:"version"`
}

// ImportResult summarizes a restore.
type ImportResult struct {
	Restored           int  // entries re-created
	Skipped            int  // entries that could not be re-created
	Legacy             bool // input was a bare array of entries
	VocabularyReplaced bool // custom plants and tasks were overwritten
}

// EntryRepository is the part of the entry repository the codec needs.
type EntryRepository interface {
	List(ctx context.Context) ([]entry.CropEntry, error)
	Create(ctx context.Context, fields entry.Fields) (entry.CropEntry, error)
}

// Vocabulary is the part of the custom vocabulary store the codec needs.
type Vocabulary interface {
	CustomPlants(ctx context.Context) ([]vocabulary.Plant, error)
	CustomTasks(ctx context.Context) ([]string, error)
	Replace(ctx context.Context, plants []vocabulary.Plant, tasks []string) error
}

// Snapshotter saves the current entry collection before a restore.
type Snapshotter interface {
	Snapshot(ctx context.Context) error
}

// Codec produces and consumes backups.
type Codec struct {
	repo     EntryRepository
	vocab    Vocabulary
	snapshot Snapshotter
	now      func() time.Time
	logger   *zap.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock replaces time.Now as the document timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(c *Codec) { c.now = fn }
}

// WithLogger sets the logger; the default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Codec) { c.logger = logger }
}

// WithSnapshotter makes Import snapshot the entries before restoring.
func WithSnapshotter(s Snapshotter) Option {
	return func(c *Codec) { c.snapshot = s }
}

// New creates a Codec.
func New(repo EntryRepository, vocab Vocabulary, opts ...Option) *Codec {
	c := &Codec{
		repo:   repo,
		vocab:  vocab,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FileName returns the conventional file name for a backup taken at t.
func FileName(t time.Time) string {
	return FileNamePrefix + t.UTC().Format("2006-01-02") + FileNameExt
}

// Export gathers every entry and both custom vocabularies.
func (c *Codec) Export(ctx context.Context) (Document, error) {
	entries, err := c.repo.List(ctx)
	if err != nil {
		return Document{}, err
	}
	plants, err := c.vocab.CustomPlants(ctx)
	if err != nil {
		return Document{}, err
	}
	tasks, err := c.vocab.CustomTasks(ctx)
	if err != nil {
		return Document{}, err
	}

	if entries == nil {
		entries = []entry.CropEntry{}
	}
	return Document{
		Entries:      entries,
		CustomPlants: plants,
		CustomTasks:  tasks,
		Timestamp:    entry.FormatTimestamp(c.now()),
		Version:      Version,
	}, nil
}

// ExportEntries returns only the entries, for the bare-array form.
func (c *Codec) ExportEntries(ctx context.Context) ([]entry.CropEntry, error) {
	entries, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []entry.CropEntry{}
	}
	return entries, nil
}

// Marshal encodes v (a Document or an entry slice) as indented UTF-8 JSON.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, apperr.Storage("failed to encode backup", err)
	}
	return buf.Bytes(), nil
}
