// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Package notify fans capture events out to connected dashboard clients.
package notify

import (
	"sync"
	"time"
)

// EventType names what happened to the capture history.
type EventType string

const (
	EventSnapshotRecorded EventType = "snapshot_recorded"
	EventCaptureFailed    EventType = "capture_failed"
)

// Event is the payload pushed to subscribers.
type Event struct {
	Type       EventType `json:"type"`
	SnapshotID int64     `json:"snapshot_id,omitempty"`
	CapturedAt time.Time `json:"captured_at,omitempty"`
	ExitCode   int       `json:"exit_code,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Hub broadcasts events to all subscribers. Slow subscribers drop
// events rather than block the publisher.
type Hub struct {
	mu      sync.Mutex
	clients map[chan Event]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[chan Event]bool)}
}

// Subscribe registers a new listener channel.
func (h *Hub) Subscribe() chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch := make(chan Event, 16) // buffer so broadcast never blocks
	h.clients[ch] = true
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
}

// Broadcast delivers the event to every subscriber that has room.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- ev:
		default:
			// client is not draining; skip it
		}
	}
}
