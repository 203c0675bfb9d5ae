// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Package server wires the console service into the HTTP surface.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"confwatch/internal/config"
	"confwatch/internal/console"
	"confwatch/internal/handlers"
	"confwatch/internal/notify"
)

// Server represents the HTTP server configuration and mux.
type Server struct {
	Cfg     *config.Config
	Service *console.Service
	Hub     *notify.Hub
	Mux     *http.ServeMux

	httpServer *http.Server
	listener   net.Listener
}

// New creates a Server around an already-constructed service and hub.
func New(cfg *config.Config, svc *console.Service, hub *notify.Hub) *Server {
	return &Server{
		Cfg:     cfg,
		Service: svc,
		Hub:     hub,
		Mux:     http.NewServeMux(),
	}
}

// Routes registers all HTTP handlers on the server mux.
func (s *Server) Routes() {
	s.Mux.HandleFunc("/health", handlers.Health)

	store := s.Service.Store
	s.Mux.Handle("/", handlers.IndexHandler(s.Service, s.Cfg.MaxSnapshots))
	s.Mux.Handle("/fetch", handlers.FetchHandler(s.Service))
	s.Mux.Handle("/snapshots", handlers.SnapshotsHandler(store))
	s.Mux.Handle("/diff", handlers.DiffHandler(store))
	s.Mux.Handle("/diff-json", handlers.DiffJSONHandler(store))
	s.Mux.Handle("/raw", handlers.RawHandler(store))
	s.Mux.Handle("/download", handlers.DownloadHandler(s.Cfg.Target, store))
	s.Mux.HandleFunc("/version", handlers.VersionHandler)
	s.Mux.Handle("/ws/events", handlers.WsEventsHandler(s.Hub))
}

// Handler returns the full middleware chain around the mux: request
// logging outside, then the optional basic-auth gate.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.Mux
	h = handlers.BasicAuth(s.Cfg.BasicUser, s.Cfg.BasicPass, h)
	return handlers.RequestLog(h)
}

// Start binds the listener and serves in a goroutine. It returns the
// actual bound port (useful with port 0) or a bind error.
func (s *Server) Start() (int, error) {
	addr := fmt.Sprintf("%s:%d", s.Cfg.Host, s.Cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.listener = ln
	s.httpServer = &http.Server{Handler: s.Handler()}

	log.Printf("[HTTP] confwatch serving on http://%s, target=%q", ln.Addr(), s.Cfg.Target)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("[HTTP] server error: %v", err)
		}
	}()
	return ln.Addr().(*net.TCPAddr).Port, nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
