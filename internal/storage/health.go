package storage

import "context"

// Health reports on the state of the stored entry collection.
type Health struct {
	Exists        bool          // the entries key has been written
	Entries       int           // entries decoded
	MissingFields int           // entries lacking id, plant, task or date
	DuplicateIDs  int           // entries whose id was already seen
	Snapshots     int           // snapshots available for rollback
	Warning       *ParseWarning // set when the blob did not decode
}

// Healthy reports whether nothing is wrong with the collection.
func (h Health) Healthy() bool {
	return h.Warning == nil && h.MissingFields == 0 && h.DuplicateIDs == 0
}

// Health analyzes the stored collection. A missing blob is healthy and empty.
func (s *EntryStore) Health(ctx context.Context) (Health, error) {
	var health Health

	result, err := s.LoadWithWarnings(ctx)
	if err != nil {
		return health, err
	}
	health.Exists = result.Exists
	health.Warning = result.Warning
	health.Entries = len(result.Entries)

	seen := make(map[string]bool, len(result.Entries))
	for _, e := range result.Entries {
		if len(e.MissingFields()) > 0 {
			health.MissingFields++
		}
		if e.ID == "" {
			continue
		}
		if seen[e.ID] {
			health.DuplicateIDs++
		}
		seen[e.ID] = true
	}

	snapshots, err := s.Snapshots(ctx)
	if err != nil {
		return health, err
	}
	health.Snapshots = len(snapshots)

	return health, nil
}
