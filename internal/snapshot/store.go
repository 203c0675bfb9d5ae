// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package snapshot

import (
	"errors"
	"sync"
	"time"
)

// DefaultMaxSnapshots is the retained-history bound used when the
// configuration does not set one.
const DefaultMaxSnapshots = 5

var (
	// ErrNotFound is returned when a snapshot id is unknown or already evicted.
	ErrNotFound = errors.New("snapshot not found")
	// ErrNotEnoughHistory is returned when a diff needs two snapshots
	// but fewer are retained.
	ErrNotEnoughHistory = errors.New("not enough history for diff")
)

// Store keeps a bounded, insertion-ordered history of snapshots.
// Record is the only mutator; ids are assigned monotonically and never
// reused, even after eviction. Readers never observe a partial append.
type Store struct {
	mu     sync.RWMutex
	snaps  []Snapshot
	nextID int64
	max    int

	// test seam; defaults to time.Now
	now func() time.Time
}

// NewStore creates a store retaining at most max snapshots.
// max values < 1 fall back to DefaultMaxSnapshots.
func NewStore(max int) *Store {
	if max < 1 {
		max = DefaultMaxSnapshots
	}
	return &Store{nextID: 1, max: max, now: time.Now}
}

// Record appends a new snapshot with the next id and the current UTC
// time, then evicts oldest-first until the bound holds.
func (s *Store) Record(text string, exitCode int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:         s.nextID,
		CapturedAt: s.now().UTC(),
		Text:       text,
		ExitCode:   exitCode,
	}
	s.nextID++
	s.snaps = append(s.snaps, snap)
	if n := len(s.snaps); n > s.max {
		// drop the oldest entries; copy so evicted text can be collected
		kept := make([]Snapshot, s.max)
		copy(kept, s.snaps[n-s.max:])
		s.snaps = kept
	}
	return snap
}

// Current returns the most recently recorded snapshot.
func (s *Store) Current() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.snaps) == 0 {
		return Snapshot{}, false
	}
	return s.snaps[len(s.snaps)-1], true
}

// Find returns the snapshot with the given id, if still retained.
func (s *Store) Find(id int64) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, snap := range s.snaps {
		if snap.ID == id {
			return snap, true
		}
	}
	return Snapshot{}, false
}

// List returns metadata for all retained snapshots, most recent first.
func (s *Store) List() []Meta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Meta, 0, len(s.snaps))
	for i := len(s.snaps) - 1; i >= 0; i-- {
		out = append(out, s.snaps[i].meta())
	}
	return out
}

// Len returns the number of retained snapshots.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snaps)
}

// LastTwo returns the second-most-recent and most-recent snapshots.
// It fails with ErrNotEnoughHistory when fewer than two are retained.
func (s *Store) LastTwo() (Snapshot, Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.snaps)
	if n < 2 {
		return Snapshot{}, Snapshot{}, ErrNotEnoughHistory
	}
	return s.snaps[n-2], s.snaps[n-1], nil
}
