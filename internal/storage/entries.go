// Package storage persists the crop entry collection as one JSON blob in a
// kv.Store, together with rotating snapshots of that blob.
package storage

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/xolan/croplog/internal/apperr"
	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/kv"
)

// Keys shared by the croplog components.
const (
	EntriesKey      = "crop_entries"
	CustomPlantsKey = "custom_plants"
	CustomTasksKey  = "custom_tasks"
	LanguageKey     = "language"
)

// ParseWarning describes a stored blob that could not be decoded.
type ParseWarning struct {
	Content string // Raw stored value
	Error   string // Decoder message
}

// LoadResult is the outcome of reading the entry collection.
type LoadResult struct {
	Entries []entry.CropEntry
	Exists  bool          // false when the key was never written
	Warning *ParseWarning // non-nil when the stored value was unreadable
}

// EntryStore reads and writes the whole entry collection under EntriesKey.
type EntryStore struct {
	kv     kv.Store
	logger *zap.Logger
}

// NewEntryStore returns an EntryStore over store. A nil logger discards output.
func NewEntryStore(store kv.Store, logger *zap.Logger) *EntryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntryStore{kv: store, logger: logger}
}

// KV exposes the underlying medium so other components can share it.
func (s *EntryStore) KV() kv.Store {
	return s.kv
}

// Load returns the stored collection. A missing key or an unreadable value
// both yield an empty, non-nil slice.
func (s *EntryStore) Load(ctx context.Context) ([]entry.CropEntry, error) {
	result, err := s.LoadWithWarnings(ctx)
	return result.Entries, err
}

// LoadWithWarnings is Load, additionally reporting why a stored value was discarded.
func (s *EntryStore) LoadWithWarnings(ctx context.Context) (LoadResult, error) {
	result := LoadResult{Entries: []entry.CropEntry{}}

	raw, ok, err := s.kv.Get(ctx, EntriesKey)
	if err != nil {
		return result, apperr.Storage("failed to read entries", err)
	}
	if !ok {
		return result, nil
	}
	result.Exists = true

	entries, err := decodeEntries(raw)
	if err != nil {
		s.logger.Warn("stored entries are unreadable, treating as empty",
			zap.String("key", EntriesKey), zap.Error(err))
		result.Warning = &ParseWarning{Content: raw, Error: err.Error()}
		return result, nil
	}
	result.Entries = entries
	return result, nil
}

// Save replaces the stored collection with entries.
func (s *EntryStore) Save(ctx context.Context, entries []entry.CropEntry) error {
	if entries == nil {
		entries = []entry.CropEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return apperr.Storage("failed to encode entries", err)
	}
	if err := s.kv.Set(ctx, EntriesKey, string(data)); err != nil {
		return apperr.Storage("failed to save entries", err)
	}
	s.logger.Debug("entries saved", zap.Int("count", len(entries)))
	return nil
}

func decodeEntries(raw string) ([]entry.CropEntry, error) {
	var entries []entry.CropEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []entry.CropEntry{}
	}
	return entries, nil
}
