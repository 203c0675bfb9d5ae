// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Package snapshot holds the bounded in-memory history of captured
// configuration dumps and the diff between any two of them.
package snapshot

import "time"

// Snapshot is one immutable recorded capture. It is never mutated after
// Record returns it; eviction is the only way it leaves the store.
type Snapshot struct {
	ID         int64     `json:"id"`
	CapturedAt time.Time `json:"captured_at"`
	Text       string    `json:"text"`
	ExitCode   int       `json:"exit_code"`
}

// Meta is the listing view of a Snapshot: everything except the text.
type Meta struct {
	ID         int64     `json:"id"`
	CapturedAt time.Time `json:"captured_at"`
	ExitCode   int       `json:"exit_code"`
	Bytes      int       `json:"bytes"`
}

// TimeHuman formats the capture time the way the dashboard displays it.
func (m Meta) TimeHuman() string {
	return m.CapturedAt.UTC().Format("2006-01-02 15:04:05 UTC")
}

// TimeHuman formats the capture time the way the dashboard displays it.
func (s Snapshot) TimeHuman() string {
	return s.CapturedAt.UTC().Format("2006-01-02 15:04:05 UTC")
}

func (s Snapshot) meta() Meta {
	return Meta{
		ID:         s.ID,
		CapturedAt: s.CapturedAt,
		ExitCode:   s.ExitCode,
		Bytes:      len(s.Text),
	}
}
