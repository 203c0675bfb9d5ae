// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"confwatch/internal/console"
)

// indexData feeds the dashboard template. ConfigText and Versions are
// pre-marshaled JSON so the page script can consume them directly.
type indexData struct {
	Title       string
	Target      string
	LastFetch   string
	Exit        string
	Error       string
	MaxVersions int
	ConfigText  template.JS
	Versions    template.JS
}

// IndexHandler renders the dashboard: current capture, version list,
// landmark index and the client-side search/diff UI.
func IndexHandler(svc *console.Service, maxVersions int) http.HandlerFunc {
	tmpl := template.Must(template.New("index").Parse(indexHTML))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		data := indexData{
			Title:       "Confwatch Config Console",
			Target:      svc.Target,
			LastFetch:   "—",
			Exit:        "—",
			Error:       svc.LastError(),
			MaxVersions: maxVersions,
		}

		currentText := ""
		if snap, ok := svc.Store.Current(); ok {
			currentText = snap.Text
			data.LastFetch = snap.TimeHuman()
			data.Exit = strconv.Itoa(snap.ExitCode)
		}

		// json.Marshal escapes <, > and & so the blobs are safe to
		// embed inside the page script
		textJSON, err := json.Marshal(currentText)
		if err != nil {
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		versionsJSON, err := json.Marshal(toItems(svc.Store.List()))
		if err != nil {
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		data.ConfigText = template.JS(textJSON)
		data.Versions = template.JS(versionsJSON)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Printf("[HTTP] index template: %v", err)
		}
	}
}

