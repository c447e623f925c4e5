// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/opplafy/tenant-manager/internal/types"
	"github.com/opplafy/tenant-manager/pkg/authentication"
)

func TestHandleCreate(t *testing.T) {
	userID := "user-123"
	validBody := `{"name": "Acme Corp", "description": "Acme tenant"}`

	tests := []struct {
		name        string
		ctx         context.Context
		body        string
		setupMocks  func(*MockServiceInterface)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "success",
			ctx:  authentication.WithUserID(context.Background(), userID),
			body: validBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateTenant(gomock.Any(), userID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, req *CreateTenantRequest) error {
						if req.Name != "Acme Corp" {
							t.Errorf("expected name Acme Corp, got %s", req.Name)
						}
						return nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unauthenticated",
			ctx:        context.Background(),
			body:       validBody,
			setupMocks: func(mockSvc *MockServiceInterface) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "invalid json",
			ctx:         authentication.WithUserID(context.Background(), userID),
			body:        `{"name": `,
			setupMocks:  func(mockSvc *MockServiceInterface) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name:        "missing name",
			ctx:         authentication.WithUserID(context.Background(), userID),
			body:        `{"description": "Acme tenant"}`,
			setupMocks:  func(mockSvc *MockServiceInterface) {},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Missing required field name",
		},
		{
			name:        "missing description",
			ctx:         authentication.WithUserID(context.Background(), userID),
			body:        `{"name": "Acme Corp"}`,
			setupMocks:  func(mockSvc *MockServiceInterface) {},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Missing required field description",
		},
		{
			name:        "user spec without roles",
			ctx:         authentication.WithUserID(context.Background(), userID),
			body:        `{"name": "Acme Corp", "description": "Acme tenant", "users": [{"name": "alice"}]}`,
			setupMocks:  func(mockSvc *MockServiceInterface) {},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Missing required field in user specification",
		},
		{
			name: "already registered",
			ctx:  authentication.WithUserID(context.Background(), userID),
			body: validBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateTenant(gomock.Any(), userID, gomock.Any()).
					Return(&WorkflowError{Kind: KindConflict, Message: "The tenant acme_corp is already registered"})
			},
			wantStatus:  http.StatusConflict,
			wantMessage: "The tenant acme_corp is already registered",
		},
		{
			name: "upstream rejection",
			ctx:  authentication.WithUserID(context.Background(), userID),
			body: validBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateTenant(gomock.Any(), userID, gomock.Any()).
					Return(&WorkflowError{Kind: KindUpstreamRejected, Message: "Organization already exists"})
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Organization already exists",
		},
		{
			name: "workflow failure",
			ctx:  authentication.WithUserID(context.Background(), userID),
			body: validBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateTenant(gomock.Any(), userID, gomock.Any()).
					Return(&WorkflowError{Kind: KindInternal, Message: "Unexpected error creating tenant"})
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Unexpected error creating tenant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			api := NewAPI(mockSvc, mockTracer, mockMonitor, mockLogger)
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.API.handleCreate").
				Return(tt.ctx, trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/tenant", strings.NewReader(tt.body)).WithContext(tt.ctx)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			if tt.wantMessage != "" {
				var body map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to parse response: %v", err)
				}
				if body["error"] != tt.wantMessage {
					t.Errorf("expected message %q, got %q", tt.wantMessage, body["error"])
				}
			}
		})
	}
}

func TestHandleList(t *testing.T) {
	userID := "user-123"
	tenants := []*types.Tenant{
		{ID: "tenant-1", Name: "Tenant 1", OwnerID: userID},
		{ID: "tenant-2", Name: "Tenant 2", OwnerID: userID},
	}

	tests := []struct {
		name       string
		ctx        context.Context
		setupMocks func(*MockServiceInterface)
		wantStatus int
		wantLen    int
	}{
		{
			name: "success",
			ctx:  authentication.WithUserID(context.Background(), userID),
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ListTenants(gomock.Any(), userID).Return(tenants, nil)
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name: "nil result rendered as empty list",
			ctx:  authentication.WithUserID(context.Background(), userID),
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ListTenants(gomock.Any(), userID).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
		{
			name:       "unauthenticated",
			ctx:        context.Background(),
			setupMocks: func(mockSvc *MockServiceInterface) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "service error",
			ctx:  authentication.WithUserID(context.Background(), userID),
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ListTenants(gomock.Any(), userID).
					Return(nil, &WorkflowError{Kind: KindInternal, Message: "An error occurred reading tenants"})
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			api := NewAPI(mockSvc, mockTracer, mockMonitor, mockLogger)
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.API.handleList").
				Return(tt.ctx, trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/tenant", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			if tt.wantStatus == http.StatusOK {
				var body []*types.Tenant
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to parse response: %v", err)
				}
				if len(body) != tt.wantLen {
					t.Errorf("expected %d tenants, got %d", tt.wantLen, len(body))
				}
			}
		})
	}
}

func TestHandleGet(t *testing.T) {
	userID := "user-123"
	tenant := &types.Tenant{ID: "acme_corp", Name: "Acme Corp", OwnerID: userID}

	tests := []struct {
		name       string
		ctx        context.Context
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name: "success",
			ctx:  authentication.WithUserID(context.Background(), userID),
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetTenant(gomock.Any(), userID, "acme_corp").Return(tenant, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unauthenticated",
			ctx:        context.Background(),
			setupMocks: func(mockSvc *MockServiceInterface) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "not found",
			ctx:  authentication.WithUserID(context.Background(), userID),
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetTenant(gomock.Any(), userID, "acme_corp").
					Return(nil, &WorkflowError{Kind: KindNotFound, Message: "Tenant acme_corp does not exist"})
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "forbidden",
			ctx:  authentication.WithUserID(context.Background(), userID),
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().GetTenant(gomock.Any(), userID, "acme_corp").
					Return(nil, &WorkflowError{Kind: KindForbidden, Message: "You are not authorized to retrieve tenant info"})
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			api := NewAPI(mockSvc, mockTracer, mockMonitor, mockLogger)
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.API.handleGet").
				Return(tt.ctx, trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/tenant/acme_corp", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			if tt.wantStatus == http.StatusOK {
				var body types.Tenant
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to parse response: %v", err)
				}
				if body.ID != tenant.ID {
					t.Errorf("expected tenant %s, got %s", tenant.ID, body.ID)
				}
			}
		})
	}
}
