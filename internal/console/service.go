// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Package console orchestrates capture attempts against the target and
// owns the last-error state shown on the dashboard.
package console

import (
	"context"
	"log"
	"sync"

	"confwatch/internal/capture"
	"confwatch/internal/notify"
	"confwatch/internal/snapshot"
)

// Service ties the capture source, the snapshot store and the event hub
// together. It is constructed once at process start and shared by every
// request handler.
type Service struct {
	Target string
	Store  *snapshot.Store

	source   capture.Source
	hub      *notify.Hub
	maxChars int

	mu      sync.Mutex
	lastErr string
}

// New creates a Service. hub may be nil when event push is not wanted.
func New(target string, maxChars int, source capture.Source, store *snapshot.Store, hub *notify.Hub) *Service {
	return &Service{
		Target:   target,
		Store:    store,
		source:   source,
		hub:      hub,
		maxChars: maxChars,
	}
}

// Fetch runs one capture attempt end to end: capture, normalize,
// record. A failed attempt records nothing and sets the last error; a
// successful one clears it. Last-error always reflects the most recent
// attempt only.
func (s *Service) Fetch(ctx context.Context) (snapshot.Snapshot, error) {
	// the blocking capture call runs outside the lock so readers and
	// other attempts are never stalled by a slow daemon
	res, err := s.source.Capture(ctx, s.Target)
	if err != nil {
		log.Printf("[CAPTURE] attempt against %q failed: %v", s.Target, err)
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		if s.hub != nil {
			s.hub.Broadcast(notify.Event{Type: notify.EventCaptureFailed, Error: err.Error()})
		}
		return snapshot.Snapshot{}, err
	}

	res = capture.Normalize(res, s.maxChars)

	s.mu.Lock()
	snap := s.Store.Record(res.Output, res.ExitCode)
	s.lastErr = ""
	s.mu.Unlock()

	log.Printf("[CAPTURE] recorded snapshot %d (%d bytes, exit=%d)", snap.ID, len(snap.Text), snap.ExitCode)
	if s.hub != nil {
		s.hub.Broadcast(notify.Event{
			Type:       notify.EventSnapshotRecorded,
			SnapshotID: snap.ID,
			CapturedAt: snap.CapturedAt,
			ExitCode:   snap.ExitCode,
		})
	}
	return snap, nil
}

// LastError returns the failure message of the most recent capture
// attempt, or "" when the last attempt succeeded or none was made.
func (s *Service) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
