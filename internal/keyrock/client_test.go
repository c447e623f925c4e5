// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package keyrock

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/opplafy/tenant-manager/internal/logging"
	"github.com/opplafy/tenant-manager/internal/tracing"
)

func newTestClient(url string) *Client {
	return NewClient(url, "admin@test.com", "secret", tracing.NewNoopTracer(), nil, logging.NewNoopLogger())
}

func loginHandler(t *testing.T, logins *int64, token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(logins, 1)

		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("failed to decode login request: %v", err)
		}
		if creds["name"] != "admin@test.com" || creds["password"] != "secret" {
			t.Errorf("unexpected login credentials: %v", creds)
		}

		w.Header().Set(subjectTokenHeader, token)
		w.WriteHeader(http.StatusCreated)
	}
}

func TestClient_CreateOrganization(t *testing.T) {
	var logins int64
	var granted bool

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/tokens", loginHandler(t, &logins, "admin-token"))
	mux.HandleFunc("POST /v1/organizations", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(authTokenHeader); got != "admin-token" {
			t.Errorf("expected admin token header, got %q", got)
		}

		var body map[string]map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if body["organization"]["name"] != "Acme Corp" {
			t.Errorf("unexpected organization name: %q", body["organization"]["name"])
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"organization": {"id": "org-123"},
		})
	})
	mux.HandleFunc("PUT /v1/organizations/org-123/users/owner-1/organization_roles/owner", func(w http.ResponseWriter, r *http.Request) {
		granted = true
		w.WriteHeader(http.StatusCreated)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	orgID, err := c.CreateOrganization(context.Background(), "Acme Corp", "Acme tenant", "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orgID != "org-123" {
		t.Errorf("expected org-123, got %q", orgID)
	}
	if !granted {
		t.Error("expected owner role grant")
	}
	if logins != 1 {
		t.Errorf("expected a single login, got %d", logins)
	}
}

func TestClient_TokenReuse(t *testing.T) {
	var logins int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/tokens", loginHandler(t, &logins, "admin-token"))
	mux.HandleFunc("GET /v1/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"users": []map[string]string{{"id": "user-1", "username": "alice"}},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	for range 3 {
		if _, err := c.GetUserID(context.Background(), "alice"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if logins != 1 {
		t.Errorf("expected token to be cached after first login, got %d logins", logins)
	}
}

func TestClient_RetryOnRevokedToken(t *testing.T) {
	var logins int64
	var attempts int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/tokens", loginHandler(t, &logins, "admin-token"))
	mux.HandleFunc("GET /v1/users", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"users": []map[string]string{{"id": "user-1", "username": "alice"}},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	userID, err := c.GetUserID(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("expected user-1, got %q", userID)
	}
	if logins != 2 {
		t.Errorf("expected a second login after the 401, got %d", logins)
	}
}

func TestClient_GetUserID_NotRegistered(t *testing.T) {
	var logins int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/tokens", loginHandler(t, &logins, "admin-token"))
	mux.HandleFunc("GET /v1/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"users": []map[string]string{}})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.GetUserID(context.Background(), "bob")

	var kErr *Error
	if !errors.As(err, &kErr) {
		t.Fatalf("expected keyrock error, got %v", err)
	}
	if kErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", kErr.StatusCode)
	}
	if kErr.Message != "user bob is not registered" {
		t.Errorf("unexpected message: %q", kErr.Message)
	}
}

func TestClient_AuthorizeOrganization(t *testing.T) {
	var logins int64
	assigned := map[string]string{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/tokens", loginHandler(t, &logins, "admin-token"))
	mux.HandleFunc("GET /v1/applications/broker-app/roles", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"roles": []map[string]string{
				{"id": "role-1", "name": "admin-role"},
				{"id": "role-2", "name": "consumer-role"},
			},
		})
	})
	mux.HandleFunc("POST /v1/applications/broker-app/organizations/org-1/roles/{roleID}/organization_roles/{orgRole}", func(w http.ResponseWriter, r *http.Request) {
		assigned[r.PathValue("roleID")] = r.PathValue("orgRole")
		w.WriteHeader(http.StatusCreated)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	if err := c.AuthorizeOrganization(context.Background(), "org-1", "broker-app", "admin-role", "consumer-role"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assigned["role-1"] != "owner" {
		t.Errorf("expected admin role assigned to owner, got %q", assigned["role-1"])
	}
	if assigned["role-2"] != "member" {
		t.Errorf("expected consumer role assigned to member, got %q", assigned["role-2"])
	}
}

func TestClient_AuthorizeOrganizationRole_RoleNotFound(t *testing.T) {
	var logins int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/tokens", loginHandler(t, &logins, "admin-token"))
	mux.HandleFunc("GET /v1/applications/bae-app/roles", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"roles": []map[string]string{}})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	err := c.AuthorizeOrganizationRole(context.Background(), "org-1", "bae-app", "seller", "owner")

	var kErr *Error
	if !errors.As(err, &kErr) {
		t.Fatalf("expected keyrock error, got %v", err)
	}
	if kErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", kErr.StatusCode)
	}
}

func TestClient_GetOrganizationMembers(t *testing.T) {
	var logins int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/tokens", loginHandler(t, &logins, "admin-token"))
	mux.HandleFunc("GET /v1/organizations/org-1/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"organization_users": []map[string]string{
				{"user_id": "user-1", "name": "alice", "role": "owner"},
				{"user_id": "user-2", "name": "bob", "role": "member"},
			},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	members, err := c.GetOrganizationMembers(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].UserID != "user-1" || members[0].Role != "owner" {
		t.Errorf("unexpected first member: %+v", members[0])
	}
}

func TestClient_UpstreamErrorMessage(t *testing.T) {
	var logins int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/tokens", loginHandler(t, &logins, "admin-token"))
	mux.HandleFunc("POST /v1/organizations", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"error": {"message": "Organization already exists"},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.CreateOrganization(context.Background(), "Acme Corp", "Acme tenant", "owner-1")

	var kErr *Error
	if !errors.As(err, &kErr) {
		t.Fatalf("expected keyrock error, got %v", err)
	}
	if kErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", kErr.StatusCode)
	}
	if kErr.Message != "Organization already exists" {
		t.Errorf("unexpected message: %q", kErr.Message)
	}
}
