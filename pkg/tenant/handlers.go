// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/opplafy/tenant-manager/internal/logging"
	"github.com/opplafy/tenant-manager/internal/monitoring"
	"github.com/opplafy/tenant-manager/internal/tracing"
	"github.com/opplafy/tenant-manager/internal/types"
	"github.com/opplafy/tenant-manager/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/tenant", a.handleCreate)
	mux.Get("/tenant", a.handleList)
	mux.Get("/tenant/{id}", a.handleGet)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleCreate")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok || userID == "" {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.validate.Struct(&req); err != nil {
		a.writeError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	if err := a.service.CreateTenant(ctx, userID, &req); err != nil {
		a.writeWorkflowError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleList")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok || userID == "" {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	tenants, err := a.service.ListTenants(ctx, userID)
	if err != nil {
		a.writeWorkflowError(w, err)
		return
	}

	if tenants == nil {
		tenants = []*types.Tenant{}
	}

	a.writeJSON(w, http.StatusOK, tenants)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleGet")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok || userID == "" {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	tenant, err := a.service.GetTenant(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeWorkflowError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, tenant)
}

func (a *API) writeWorkflowError(w http.ResponseWriter, err error) {
	var wErr *WorkflowError
	if errors.As(err, &wErr) {
		a.writeError(w, statusFromKind(wErr.Kind), wErr.Message)
		return
	}

	a.writeError(w, http.StatusInternalServerError, "Internal server error")
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, map[string]string{"error": message})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func statusFromKind(kind ErrorKind) int {
	switch kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamRejected:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// validationMessage renders the first violation in the response wording the
// API has always used.
func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return "Invalid request body"
	}

	fe := vErrs[0]
	if strings.Contains(fe.Namespace(), "Users[") {
		return "Missing required field in user specification"
	}

	return fmt.Sprintf("Missing required field %s", strings.ToLower(fe.Field()))
}
