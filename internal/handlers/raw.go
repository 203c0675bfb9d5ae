package handlers

import (
	"fmt"
	"net/http"

	"confwatch/internal/snapshot"
)

// RawHandler returns the current snapshot's full text.
func RawHandler(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := store.Current()
		if !ok {
			http.Error(w, "No capture cached yet. POST /fetch first.", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(snap.Text))
	}
}

// DownloadHandler serves the current snapshot as a file attachment
// named after the target and the capture timestamp.
func DownloadHandler(target string, store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := store.Current()
		if !ok {
			http.Error(w, "No capture cached yet. POST /fetch first.", http.StatusNotFound)
			return
		}
		fname := fmt.Sprintf("%s-config-%s.txt", target, snap.CapturedAt.UTC().Format("20060102-150405"))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fname))
		_, _ = w.Write([]byte(snap.Text))
	}
}
