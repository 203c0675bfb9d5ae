package handlers

import (
	"net/http"

	"confwatch/internal/console"
)

// FetchHandler triggers one capture attempt and bounces back to the
// dashboard. Failures land in the service's last-error, not in the
// response; the redirect happens either way.
func FetchHandler(svc *console.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		WriteAuditLog("Capture triggered for %q from %s", svc.Target, r.RemoteAddr)
		if snap, err := svc.Fetch(r.Context()); err == nil {
			WriteAuditLog("Capture recorded snapshot %d (exit=%d)", snap.ID, snap.ExitCode)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
