// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"confwatch/internal/capture"
	"confwatch/internal/console"
	"confwatch/internal/snapshot"
)

type fakeSource struct {
	res capture.Result
	err error
}

func (f *fakeSource) Capture(ctx context.Context, target string) (capture.Result, error) {
	return f.res, f.err
}

func TestDiffHandlerNotEnoughHistory(t *testing.T) {
	store := snapshot.NewStore(5)
	rec := httptest.NewRecorder()
	DiffHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/diff", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not enough history") {
		t.Fatalf("expected the insufficient-history message, got %q", rec.Body.String())
	}
}

func TestDiffHandlerUnknownID(t *testing.T) {
	store := snapshot.NewStore(5)
	store.Record("a\n", 0)
	store.Record("b\n", 0)

	rec := httptest.NewRecorder()
	DiffHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/diff?left=1&right=99", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Snapshot not found") {
		t.Fatalf("expected the not-found message, got %q", rec.Body.String())
	}
}

func TestDiffHandlerUnified(t *testing.T) {
	store := snapshot.NewStore(5)
	store.Record("a\nb\nc", 0)
	store.Record("a\nx\nc", 0)

	rec := httptest.NewRecorder()
	DiffHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/diff?left=1&right=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"-b\n", "+x\n", "--- snapshot-1", "+++ snapshot-2"} {
		if !strings.Contains(body, want) {
			t.Errorf("diff missing %q:\n%s", want, body)
		}
	}
}

func TestDiffHandlerBadID(t *testing.T) {
	store := snapshot.NewStore(5)
	rec := httptest.NewRecorder()
	DiffHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/diff?left=abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDiffJSONHandler(t *testing.T) {
	store := snapshot.NewStore(5)
	store.Record("left text", 0)
	store.Record("right text", 0)

	rec := httptest.NewRecorder()
	DiffJSONHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/diff-json?left=1&right=2", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload map[string]struct {
		ID      int64  `json:"id"`
		TsHuman string `json:"ts_human"`
		Text    string `json:"text"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if payload["left"].Text != "left text" || payload["right"].Text != "right text" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	rec = httptest.NewRecorder()
	DiffJSONHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/diff-json?left=1&right=99", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", rec.Code)
	}
}

func TestRawHandler(t *testing.T) {
	store := snapshot.NewStore(5)

	rec := httptest.NewRecorder()
	RawHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/raw", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("empty store: expected 404, got %d", rec.Code)
	}

	store.Record("the config", 0)
	rec = httptest.NewRecorder()
	RawHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/raw", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "the config" {
		t.Fatalf("unexpected raw response %d %q", rec.Code, rec.Body.String())
	}
}

func TestDownloadHandlerSetsAttachment(t *testing.T) {
	store := snapshot.NewStore(5)
	store.Record("data", 0)

	rec := httptest.NewRecorder()
	DownloadHandler("npmplus", store)(rec, httptest.NewRequest(http.MethodGet, "/download", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment;") || !strings.Contains(cd, "npmplus-config-") {
		t.Fatalf("unexpected disposition %q", cd)
	}
}

func TestSnapshotsHandlerOrder(t *testing.T) {
	store := snapshot.NewStore(5)
	store.Record("a", 0)
	store.Record("b", 1)

	rec := httptest.NewRecorder()
	SnapshotsHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/snapshots", nil))

	var items []snapshotItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(items) != 2 || items[0].ID != 2 || items[1].ID != 1 {
		t.Fatalf("expected most-recent-first order, got %+v", items)
	}
	if items[0].ExitCode != 1 {
		t.Fatalf("exit code lost: %+v", items)
	}
}

func TestFetchHandlerRedirectsAndRecords(t *testing.T) {
	src := &fakeSource{res: capture.Result{Output: "conf"}}
	store := snapshot.NewStore(5)
	svc := console.New("npmplus", 1000, src, store, nil)

	rec := httptest.NewRecorder()
	FetchHandler(svc)(rec, httptest.NewRequest(http.MethodPost, "/fetch", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if store.Len() != 1 {
		t.Fatal("fetch did not record a snapshot")
	}
}

func TestFetchHandlerRejectsGet(t *testing.T) {
	svc := console.New("npmplus", 1000, &fakeSource{}, snapshot.NewStore(5), nil)
	rec := httptest.NewRecorder()
	FetchHandler(svc)(rec, httptest.NewRequest(http.MethodGet, "/fetch", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestIndexHandlerRendersState(t *testing.T) {
	src := &fakeSource{res: capture.Result{Output: "server {\n}\n", ExitCode: 0}}
	store := snapshot.NewStore(5)
	svc := console.New("npmplus", 1000, src, store, nil)
	if _, err := svc.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	rec := httptest.NewRecorder()
	IndexHandler(svc, 5)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Target: npmplus") {
		t.Fatalf("index missing target chip:\n%s", body[:200])
	}
	if !strings.Contains(body, "server {") {
		t.Fatal("index missing embedded config text")
	}
}

func TestIndexHandlerUnknownPathIs404(t *testing.T) {
	svc := console.New("npmplus", 1000, &fakeSource{}, snapshot.NewStore(5), nil)
	rec := httptest.NewRecorder()
	IndexHandler(svc, 5)(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
