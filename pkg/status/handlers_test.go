// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"

	"github.com/opplafy/tenant-manager/internal/logging"
	"github.com/opplafy/tenant-manager/internal/tracing"
	"github.com/opplafy/tenant-manager/internal/version"
)

func TestHandleAlive(t *testing.T) {
	api := NewAPI(tracing.NewNoopTracer(), nil, logging.NewNoopLogger())
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected HTTP status code %v got %v", http.StatusOK, res.StatusCode)
	}

	body := map[string]string{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("expected error to be nil got %v", err)
	}

	if body["status"] != "ok" {
		t.Fatalf("expected status %q got %q", "ok", body["status"])
	}
}

func TestHandleVersion(t *testing.T) {
	api := NewAPI(tracing.NewNoopTracer(), nil, logging.NewNoopLogger())
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/version", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected HTTP status code %v got %v", http.StatusOK, res.StatusCode)
	}

	body := map[string]string{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("expected error to be nil got %v", err)
	}

	if body["version"] != version.Version {
		t.Fatalf("expected version %q got %q", version.Version, body["version"])
	}
}
