package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xolan/croplog/internal/apperr"
)

const (
	// SnapshotSuffix separates the entries key from the rotation number.
	SnapshotSuffix = ".bak"
	// MaxSnapshots is the number of snapshots kept.
	MaxSnapshots = 3
)

// SnapshotKey returns the key of snapshot n; 1 is the most recent.
func SnapshotKey(n int) string {
	return fmt.Sprintf("%s%s.%d", EntriesKey, SnapshotSuffix, n)
}

// SnapshotInfo describes one stored snapshot.
type SnapshotInfo struct {
	Number  int  // 1 (newest) to MaxSnapshots (oldest)
	Count   int  // entries in the snapshot, 0 when Corrupt
	Corrupt bool // the snapshot holds an unreadable value
}

// rotate shifts .bak.1 -> .bak.2 -> .bak.3, dropping the oldest.
func (s *EntryStore) rotate(ctx context.Context) error {
	if err := s.kv.Remove(ctx, SnapshotKey(MaxSnapshots)); err != nil {
		return err
	}
	for i := MaxSnapshots - 1; i >= 1; i-- {
		raw, ok, err := s.kv.Get(ctx, SnapshotKey(i))
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := s.kv.Set(ctx, SnapshotKey(i+1), raw); err != nil {
			return err
		}
		if err := s.kv.Remove(ctx, SnapshotKey(i)); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot copies the current blob, readable or not, into snapshot 1.
// It does nothing when no blob has been written yet.
func (s *EntryStore) Snapshot(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, EntriesKey)
	if err != nil {
		return apperr.Storage("failed to read entries for snapshot", err)
	}
	if !ok {
		return nil
	}
	return s.writeSnapshot(ctx, raw)
}

func (s *EntryStore) writeSnapshot(ctx context.Context, raw string) error {
	if err := s.rotate(ctx); err != nil {
		return apperr.Storage("failed to rotate snapshots", err)
	}
	if err := s.kv.Set(ctx, SnapshotKey(1), raw); err != nil {
		return apperr.Storage("failed to write snapshot", err)
	}
	s.logger.Debug("snapshot taken", zap.String("key", SnapshotKey(1)))
	return nil
}

// Snapshots lists the stored snapshots, newest first.
func (s *EntryStore) Snapshots(ctx context.Context) ([]SnapshotInfo, error) {
	var infos []SnapshotInfo
	for i := 1; i <= MaxSnapshots; i++ {
		raw, ok, err := s.kv.Get(ctx, SnapshotKey(i))
		if err != nil {
			return nil, apperr.Storage("failed to read snapshot", err)
		}
		if !ok {
			continue
		}
		info := SnapshotInfo{Number: i}
		if entries, err := decodeEntries(raw); err != nil {
			info.Corrupt = true
		} else {
			info.Count = len(entries)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Rollback replaces the current blob with snapshot n. The current blob is
// snapshotted first, so a rollback can itself be rolled back.
func (s *EntryStore) Rollback(ctx context.Context, n int) error {
	if n < 1 || n > MaxSnapshots {
		return apperr.Validation("invalid snapshot number %d, must be between 1 and %d", n, MaxSnapshots)
	}

	raw, ok, err := s.kv.Get(ctx, SnapshotKey(n))
	if err != nil {
		return apperr.Storage("failed to read snapshot", err)
	}
	if !ok {
		return apperr.NotFound("snapshot %d does not exist", n)
	}

	if err := s.Snapshot(ctx); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, EntriesKey, raw); err != nil {
		return apperr.Storage("failed to restore snapshot", err)
	}
	s.logger.Info("rolled back entries", zap.Int("snapshot", n))
	return nil
}
