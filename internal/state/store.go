package state

import (
	"sync"
	"time"
)

// Snapshot represents the latest rendered summary available to shells.
type Snapshot struct {
	Summary             string
	HasData             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for multiple
// polls in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. The poller writes;
// shells read. Overwrite semantics: only the latest summary matters.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored summary. When err is non-nil the summary is
// still recorded (it carries the fallback display text) and the failure
// streak is advanced.
func (s *Store) Update(summary string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Summary = summary
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.HasData = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
