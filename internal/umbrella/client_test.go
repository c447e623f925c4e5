// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package umbrella

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opplafy/tenant-manager/internal/logging"
	"github.com/opplafy/tenant-manager/internal/tracing"
)

func newTestClient(url string) *Client {
	return NewClient(url, "admin-token", "api-key", tracing.NewNoopTracer(), nil, logging.NewNoopLogger())
}

func testPolicies() []Policy {
	return []Policy{
		{
			ID:         "policy-1",
			HTTPMethod: "GET",
			Regex:      "^/",
			Settings: PolicySettings{
				RequiredHeaders:       []RequiredHeader{{Key: "Fiware-Service", Value: "acme_corp"}},
				RequiredRoles:         []string{"org-1.consumer-role"},
				RequiredRolesOverride: true,
			},
		},
	}
}

func TestClient_AddAppPolicies(t *testing.T) {
	var updated map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api-umbrella/v1/apis", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(adminTokenHeader); got != "admin-token" {
			t.Errorf("expected admin token header, got %q", got)
		}
		if got := r.Header.Get(apiKeyHeader); got != "api-key" {
			t.Errorf("expected api key header, got %q", got)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"id":       "other-api",
					"settings": map[string]interface{}{"idp_app_id": "other-app"},
				},
				{
					"id":            "api-1",
					"frontend_host": "broker.example.com",
					"settings":      map[string]interface{}{"idp_app_id": "broker-app"},
					"sub_settings": []interface{}{
						map[string]interface{}{"id": "existing-policy"},
					},
				},
			},
		})
	})
	mux.HandleFunc("PUT /api-umbrella/v1/apis/api-1", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode update: %v", err)
		}
		updated = body["api"]
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	if err := c.AddAppPolicies(context.Background(), "broker-app", testPolicies()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated == nil {
		t.Fatal("expected the API backend to be updated")
	}

	// Fields the client does not model must survive the round trip
	if updated["frontend_host"] != "broker.example.com" {
		t.Errorf("expected frontend_host to be preserved, got %v", updated["frontend_host"])
	}

	subSettings, _ := updated["sub_settings"].([]interface{})
	if len(subSettings) != 2 {
		t.Fatalf("expected existing policy plus the new one, got %d entries", len(subSettings))
	}

	policy, _ := subSettings[1].(map[string]interface{})
	if policy["http_method"] != "GET" || policy["regex"] != "^/" {
		t.Errorf("unexpected appended policy: %v", policy)
	}
}

func TestClient_AddAppPolicies_NoBackend(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api-umbrella/v1/apis", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []map[string]interface{}{}})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	err := c.AddAppPolicies(context.Background(), "broker-app", testPolicies())

	var uErr *Error
	if !errors.As(err, &uErr) {
		t.Fatalf("expected umbrella error, got %v", err)
	}
	if uErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", uErr.StatusCode)
	}
}

func TestClient_AddAppPolicies_UpdateRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api-umbrella/v1/apis", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"id":       "api-1",
					"settings": map[string]interface{}{"idp_app_id": "broker-app"},
				},
			},
		})
	})
	mux.HandleFunc("PUT /api-umbrella/v1/apis/api-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"message": "Invalid sub settings"}},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	err := c.AddAppPolicies(context.Background(), "broker-app", testPolicies())

	var uErr *Error
	if !errors.As(err, &uErr) {
		t.Fatalf("expected umbrella error, got %v", err)
	}
	if uErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", uErr.StatusCode)
	}
	if uErr.Message != "Invalid sub settings" {
		t.Errorf("unexpected message: %q", uErr.Message)
	}
}
