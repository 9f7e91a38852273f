package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/xolan/croplog/internal/apperr"
	"github.com/xolan/croplog/internal/kv"
)

func seed(t *testing.T, files kv.Store, key, value string) {
	t.Helper()
	if err := files.Set(context.Background(), key, value); err != nil {
		t.Fatalf("failed to seed %s: %v", key, err)
	}
}

func mustGet(t *testing.T, files kv.Store, key string) (string, bool) {
	t.Helper()
	v, ok, err := files.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("failed to read %s: %v", key, err)
	}
	return v, ok
}

func TestSnapshotKey(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "crop_entries.bak.1"},
		{2, "crop_entries.bak.2"},
		{3, "crop_entries.bak.3"},
	}
	for _, tt := range tests {
		if got := SnapshotKey(tt.n); got != tt.want {
			t.Errorf("SnapshotKey(%d) = %q, expected %q", tt.n, got, tt.want)
		}
	}
}

func TestSnapshot_NoBlob(t *testing.T) {
	s, files := newTestStore(t)

	if err := s.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot() returned unexpected error: %v", err)
	}
	if _, ok := mustGet(t, files, SnapshotKey(1)); ok {
		t.Error("Snapshot() created a snapshot for a missing blob")
	}
}

func TestSnapshot_RotatesAndDropsOldest(t *testing.T) {
	s, files := newTestStore(t)
	ctx := context.Background()

	for _, content := range []string{`[]`, `[{"id":"1"}]`, `[{"id":"1"},{"id":"2"}]`, `{broken`} {
		seed(t, files, EntriesKey, content)
		if err := s.Snapshot(ctx); err != nil {
			t.Fatalf("Snapshot() returned unexpected error: %v", err)
		}
	}

	want := map[int]string{
		1: `{broken`,
		2: `[{"id":"1"},{"id":"2"}]`,
		3: `[{"id":"1"}]`,
	}
	for n, content := range want {
		got, ok := mustGet(t, files, SnapshotKey(n))
		if !ok {
			t.Fatalf("snapshot %d missing", n)
		}
		if got != content {
			t.Errorf("snapshot %d = %q, expected %q", n, got, content)
		}
	}
	if _, ok := mustGet(t, files, SnapshotKey(4)); ok {
		t.Error("more than MaxSnapshots snapshots kept")
	}
}

func TestSnapshots_Listing(t *testing.T) {
	s, files := newTestStore(t)
	ctx := context.Background()

	infos, err := s.Snapshots(ctx)
	if err != nil {
		t.Fatalf("Snapshots() returned unexpected error: %v", err)
	}
	if len(infos) != 0 {
		t.Fatalf("expected no snapshots, got %d", len(infos))
	}

	seed(t, files, SnapshotKey(1), `[{"id":"1"},{"id":"2"}]`)
	seed(t, files, SnapshotKey(3), `nope`)

	infos, err = s.Snapshots(ctx)
	if err != nil {
		t.Fatalf("Snapshots() returned unexpected error: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(infos))
	}
	if infos[0] != (SnapshotInfo{Number: 1, Count: 2}) {
		t.Errorf("infos[0] = %+v", infos[0])
	}
	if infos[1] != (SnapshotInfo{Number: 3, Corrupt: true}) {
		t.Errorf("infos[1] = %+v", infos[1])
	}
}

func TestRollback_InvalidNumber(t *testing.T) {
	s, _ := newTestStore(t)

	for _, n := range []int{0, -1, MaxSnapshots + 1} {
		if err := s.Rollback(context.Background(), n); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("Rollback(%d) error = %v, expected VALIDATION", n, err)
		}
	}
}

func TestRollback_MissingSnapshot(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Rollback(context.Background(), 2); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Rollback(2) error = %v, expected NOT_FOUND", err)
	}
}

func TestRollback_RestoresSelectedSnapshot(t *testing.T) {
	s, files := newTestStore(t)
	ctx := context.Background()

	seed(t, files, EntriesKey, `[{"id":"current"}]`)
	seed(t, files, SnapshotKey(1), `[{"id":"newer"}]`)
	seed(t, files, SnapshotKey(2), `[{"id":"older"}]`)

	if err := s.Rollback(ctx, 2); err != nil {
		t.Fatalf("Rollback(2) returned unexpected error: %v", err)
	}

	if got, _ := mustGet(t, files, EntriesKey); got != `[{"id":"older"}]` {
		t.Errorf("entries after rollback = %q", got)
	}
	// The pre-rollback state becomes the newest snapshot.
	if got, _ := mustGet(t, files, SnapshotKey(1)); got != `[{"id":"current"}]` {
		t.Errorf("snapshot 1 after rollback = %q", got)
	}
	if got, _ := mustGet(t, files, SnapshotKey(2)); got != `[{"id":"newer"}]` {
		t.Errorf("snapshot 2 after rollback = %q", got)
	}
}

func TestHealth(t *testing.T) {
	s, files := newTestStore(t)
	ctx := context.Background()

	h, err := s.Health(ctx)
	if err != nil {
		t.Fatalf("Health() returned unexpected error: %v", err)
	}
	if h.Exists || !h.Healthy() {
		t.Errorf("fresh store health = %+v", h)
	}

	seed(t, files, EntriesKey, `[
		{"id":"1","plant":"vine","task":"Κλάδεμα","date":"2024-05-01"},
		{"id":"1","plant":"tomato","task":"Πότισμα","date":"2024-05-02"},
		{"id":"2","plant":"","task":"Πότισμα","date":"2024-05-02"}
	]`)
	seed(t, files, SnapshotKey(1), `[]`)

	h, err = s.Health(ctx)
	if err != nil {
		t.Fatalf("Health() returned unexpected error: %v", err)
	}
	if !h.Exists || h.Entries != 3 || h.MissingFields != 1 || h.DuplicateIDs != 1 || h.Snapshots != 1 {
		t.Errorf("Health() = %+v", h)
	}
	if h.Healthy() {
		t.Error("expected unhealthy collection")
	}

	seed(t, files, EntriesKey, `garbage`)
	h, err = s.Health(ctx)
	if err != nil {
		t.Fatalf("Health() returned unexpected error: %v", err)
	}
	if h.Warning == nil || h.Healthy() {
		t.Errorf("expected parse warning, got %+v", h)
	}
}
