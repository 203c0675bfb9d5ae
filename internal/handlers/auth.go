// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package handlers

import (
	"crypto/subtle"
	"net/http"
)

// BasicAuth gates next behind the shared credential pair. With an empty
// user or password the gate is bypassed entirely. A missing or
// malformed Authorization header and a wrong credential both get a 401
// challenge, with distinct messages so the operator can tell them apart.
func BasicAuth(user, pass string, next http.Handler) http.Handler {
	if user == "" || pass == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, ok := r.BasicAuth()
		if !ok {
			challenge(w, "Auth required")
			return
		}
		userOK := subtle.ConstantTimeCompare([]byte(gotUser), []byte(user)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(gotPass), []byte(pass)) == 1
		if !userOK || !passOK {
			WriteAuditLog("Rejected credentials for %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
			challenge(w, "Invalid credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func challenge(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="confwatch"`)
	http.Error(w, msg, http.StatusUnauthorized)
}
