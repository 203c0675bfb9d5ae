package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"confwatch/internal/snapshot"
)

// parseID reads an optional int64 query parameter. A missing parameter
// returns (nil, true); a malformed one returns (nil, false).
func parseID(r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// DiffHandler renders a plain-text unified diff between two snapshots.
// Without parameters it compares the previous and current snapshot.
func DiffHandler(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		left, ok := parseID(r, "left")
		if !ok {
			http.Error(w, "invalid left id", http.StatusBadRequest)
			return
		}
		right, ok := parseID(r, "right")
		if !ok {
			http.Error(w, "invalid right id", http.StatusBadRequest)
			return
		}

		out, err := store.DiffPair(left, right)
		if err != nil {
			writeDiffError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(out))
	}
}

// diffSide is one half of the /diff-json payload.
type diffSide struct {
	ID      int64  `json:"id"`
	TsHuman string `json:"ts_human"`
	Text    string `json:"text"`
}

// DiffJSONHandler returns both sides' full text so the dashboard can
// render its side-by-side panes client-side.
func DiffJSONHandler(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		left, ok := parseID(r, "left")
		if !ok || left == nil {
			http.Error(w, "missing or invalid left id", http.StatusBadRequest)
			return
		}
		right, ok := parseID(r, "right")
		if !ok || right == nil {
			http.Error(w, "missing or invalid right id", http.StatusBadRequest)
			return
		}

		l, okL := store.Find(*left)
		rSnap, okR := store.Find(*right)
		if !okL || !okR {
			writeJSONError(w, http.StatusNotFound, "Snapshot not found.")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]diffSide{
			"left":  {ID: l.ID, TsHuman: l.TimeHuman(), Text: l.Text},
			"right": {ID: rSnap.ID, TsHuman: rSnap.TimeHuman(), Text: rSnap.Text},
		})
	}
}

func writeDiffError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, snapshot.ErrNotEnoughHistory):
		http.Error(w, "Not enough history for diff.", http.StatusNotFound)
	case errors.Is(err, snapshot.ErrNotFound):
		http.Error(w, "Snapshot not found.", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
