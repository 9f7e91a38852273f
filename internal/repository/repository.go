// Package repository implements list/create/update/delete over the entry
// collection held by a storage.EntryStore.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xolan/croplog/internal/apperr"
	"github.com/xolan/croplog/internal/entry"
	"github.com/xolan/croplog/internal/storage"
)

// Repository provides operations for managing crop entries.
type Repository struct {
	store  *storage.EntryStore
	newID  func() string
	now    func() time.Time
	logger *zap.Logger

	mu sync.Mutex
}

// Option configures a Repository.
type Option func(*Repository)

// WithIDGenerator replaces uuid.NewString as the id source.
func WithIDGenerator(fn func() string) Option {
	return func(r *Repository) { r.newID = fn }
}

// WithClock replaces time.Now as the createdAt source.
func WithClock(fn func() time.Time) Option {
	return func(r *Repository) { r.now = fn }
}

// WithLogger sets the logger; the default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Repository) { r.logger = logger }
}

// New creates a Repository over store.
func New(store *storage.EntryStore, opts ...Option) *Repository {
	r := &Repository{
		store:  store,
		newID:  uuid.NewString,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Store returns the underlying entry store.
func (r *Repository) Store() *storage.EntryStore {
	return r.store
}

// List returns every entry, newest date first. Entries with equal dates keep
// their stored order, and entries whose date does not parse come last.
func (r *Repository) List(ctx context.Context) ([]entry.CropEntry, error) {
	entries, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	entry.SortByDateDesc(entries)
	return entries, nil
}

// Get returns the entry with the given id.
func (r *Repository) Get(ctx context.Context, id string) (entry.CropEntry, error) {
	entries, err := r.store.Load(ctx)
	if err != nil {
		return entry.CropEntry{}, err
	}
	if i := indexOf(entries, id); i >= 0 {
		return entries[i], nil
	}
	return entry.CropEntry{}, apperr.NotFound("entry %q not found", id)
}

// Create stores a new entry with a fresh id and createdAt, placing it first
// in the collection.
func (r *Repository) Create(ctx context.Context, fields entry.Fields) (entry.CropEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return entry.CropEntry{}, err
	}

	created := entry.CropEntry{
		ID:        r.newID(),
		Date:      fields.Date,
		Plant:     fields.Plant,
		Task:      fields.Task,
		Notes:     fields.Notes,
		CreatedAt: entry.FormatTimestamp(r.now()),
	}

	next := make([]entry.CropEntry, 0, len(entries)+1)
	next = append(next, created)
	next = append(next, entries...)

	if err := r.store.Save(ctx, next); err != nil {
		return entry.CropEntry{}, err
	}
	r.logger.Debug("entry created", zap.String("id", created.ID), zap.String("plant", created.Plant))
	return created, nil
}

// Update merges patch into the entry with the given id. It fails with
// NOT_FOUND, without writing, when no such entry exists.
func (r *Repository) Update(ctx context.Context, id string, patch entry.Patch) (entry.CropEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return entry.CropEntry{}, err
	}

	i := indexOf(entries, id)
	if i < 0 {
		return entry.CropEntry{}, apperr.NotFound("entry %q not found", id)
	}
	entries[i] = patch.Apply(entries[i])

	if err := r.store.Snapshot(ctx); err != nil {
		return entry.CropEntry{}, err
	}
	if err := r.store.Save(ctx, entries); err != nil {
		return entry.CropEntry{}, err
	}
	r.logger.Debug("entry updated", zap.String("id", id))
	return entries[i], nil
}

// Delete removes the entry with the given id. An unknown id is not an error
// and nothing is written.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return err
	}

	i := indexOf(entries, id)
	if i < 0 {
		return nil
	}

	kept := make([]entry.CropEntry, 0, len(entries)-1)
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	if err := r.store.Snapshot(ctx); err != nil {
		return err
	}
	if err := r.store.Save(ctx, kept); err != nil {
		return err
	}
	r.logger.Debug("entry deleted", zap.String("id", id))
	return nil
}

// load reads the collection for a mutation. An unreadable blob is
// snapshotted first so the write that follows does not destroy it.
func (r *Repository) load(ctx context.Context) ([]entry.CropEntry, error) {
	result, err := r.store.LoadWithWarnings(ctx)
	if err != nil {
		return nil, err
	}
	if result.Warning != nil {
		r.logger.Warn("overwriting unreadable entries, previous value kept as snapshot",
			zap.String("error", result.Warning.Error))
		if err := r.store.Snapshot(ctx); err != nil {
			return nil, err
		}
	}
	return result.Entries, nil
}

func indexOf(entries []entry.CropEntry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
