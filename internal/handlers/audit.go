package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var auditMu sync.Mutex

// auditPath resolves the audit log location, creating the directory on
// first use. Empty return means auditing is unavailable on this host.
func auditPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".confwatch")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ""
	}
	return filepath.Join(dir, "audit.log")
}

// WriteAuditLog appends a timestamped line to ~/.confwatch/audit.log.
// Capture triggers and rejected logins go through here; failures to
// write are ignored so auditing never breaks a request.
func WriteAuditLog(format string, v ...interface{}) {
	auditMu.Lock()
	defer auditMu.Unlock()

	path := auditPath()
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	ts := time.Now().UTC().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(f, "[%s] %s\n", ts, fmt.Sprintf(format, v...))
}
