package handlers

import "net/http"

// Version is the confwatch release version reported by /version and /health.
const Version = "0.1.0"

// VersionHandler returns the running server version.
func VersionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("{\"version\":\"" + Version + "\"}"))
}
