// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"confwatch/internal/capture"
	"confwatch/internal/config"
	"confwatch/internal/console"
	"confwatch/internal/handlers"
	"confwatch/internal/notify"
	"confwatch/internal/server"
	"confwatch/internal/snapshot"
)

func main() {
	host := flag.String("host", "", "host interface to listen on (overrides config)")
	port := flag.Int("port", 0, "port to listen on (overrides config)")
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(handlers.Version)
		os.Exit(0)
	}

	// Ensure logs go to stdout so the deployment script can capture them
	log.SetOutput(os.Stdout)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.ApplyOverrides(*host, *port); err != nil {
		log.Fatalf("config: %v", err)
	}

	source, err := capture.NewDockerSource(cfg.Command)
	if err != nil {
		log.Fatalf("capture source: %v", err)
	}
	defer source.Close()

	store := snapshot.NewStore(cfg.MaxSnapshots)
	hub := notify.NewHub()
	svc := console.New(cfg.Target, cfg.MaxChars, source, store, hub)

	srv := server.New(cfg, svc, hub)
	srv.Routes()

	log.Printf("confwatch v%s starting, target=%q command=%v", handlers.Version, cfg.Target, cfg.Command)
	if cfg.Host != "127.0.0.1" && cfg.Host != "localhost" {
		log.Printf("[WARNING] Server is listening on EXTERNAL interface (%s). Put it behind TLS or keep it in a container network!", cfg.Host)
	}
	if !cfg.AuthEnabled() {
		log.Printf("[WARNING] Basic auth is disabled; every endpoint is open.")
	}

	if _, err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}

	// wait for interrupt (Ctrl-C) or termination signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutdown signal received, shutting down server...")

	if err := srv.Shutdown(); err != nil {
		log.Printf("error during server shutdown: %v", err)
	}
}
