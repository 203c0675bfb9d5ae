// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"confwatch/internal/notify"
)

// WsEventsHandler upgrades the connection to a WebSocket and streams
// capture events (snapshot recorded / capture failed) to the client so
// open dashboards can refresh without polling.
func WsEventsHandler(hub *notify.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		up := websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		}
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "upgrade failed", http.StatusBadRequest)
			return
		}
		defer conn.Close()

		ch := hub.Subscribe()
		defer hub.Unsubscribe(ch)
		log.Printf("[WS] events client connected: %s", r.RemoteAddr)

		// drain reads so client-initiated close is noticed
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-done:
				log.Printf("[WS] events client disconnected: %s", r.RemoteAddr)
				return
			case ev, ok := <-ch:
				if !ok {
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("[WS] write to %s failed: %v", r.RemoteAddr, err)
					return
				}
			}
		}
	}
}
