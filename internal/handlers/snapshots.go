package handlers

import (
	"encoding/json"
	"net/http"

	"confwatch/internal/snapshot"
)

// snapshotItem matches the JSON shape the dashboard script consumes.
type snapshotItem struct {
	ID       int64  `json:"id"`
	TsHuman  string `json:"ts_human"`
	ExitCode int    `json:"exit_code"`
	Bytes    int    `json:"bytes"`
}

func toItems(metas []snapshot.Meta) []snapshotItem {
	items := make([]snapshotItem, 0, len(metas))
	for _, m := range metas {
		items = append(items, snapshotItem{
			ID:       m.ID,
			TsHuman:  m.TimeHuman(),
			ExitCode: m.ExitCode,
			Bytes:    m.Bytes,
		})
	}
	return items
}

// SnapshotsHandler lists retained snapshot metadata, most recent first.
func SnapshotsHandler(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toItems(store.List()))
	}
}
