// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/opplafy/tenant-manager/internal/keyrock"
	"github.com/opplafy/tenant-manager/internal/logging"
	"github.com/opplafy/tenant-manager/internal/monitoring"
	"github.com/opplafy/tenant-manager/internal/storage"
	"github.com/opplafy/tenant-manager/internal/tracing"
	"github.com/opplafy/tenant-manager/internal/types"
	"github.com/opplafy/tenant-manager/internal/umbrella"
)

// Config carries the application ids and role vocabulary the provisioning
// workflow operates with.
type Config struct {
	BrokerAppID        string
	BrokerAdminRole    string
	BrokerConsumerRole string

	BAEAppID        string
	BAESellerRole   string
	BAECustomerRole string
	BAEAdminRole    string

	TenantHeader string
}

type Service struct {
	storage  StorageInterface
	idm      IdentityProviderInterface
	policies PolicyClientInterface
	cfg      Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	idm IdentityProviderInterface,
	policies PolicyClientInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		idm:      idm,
		policies: policies,
		cfg:      cfg,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// TenantID derives the tenant identifier from its display name.
func TenantID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// CreateTenant runs the provisioning workflow: organization creation, role
// authorization, member grants, gateway policies and finally the local
// record. Side effects already applied upstream are NOT rolled back when a
// later step fails.
func (s *Service) CreateTenant(ctx context.Context, ownerID string, req *CreateTenantRequest) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	id := TenantID(req.Name)

	if _, err := s.storage.GetTenant(ctx, id); err == nil {
		return &WorkflowError{
			Kind:    KindConflict,
			Message: fmt.Sprintf("The tenant %s is already registered", id),
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Errorf("failed to check tenant registration: %v", err)
		return classify(err, "Unexpected error creating tenant")
	}

	orgID, err := s.idm.CreateOrganization(ctx, req.Name, req.Description, ownerID)
	if err != nil {
		s.logger.Errorf("failed to create organization for tenant %s: %v", id, err)
		return classify(err, "Unexpected error creating tenant")
	}

	if err := s.idm.AuthorizeOrganization(ctx, orgID, s.cfg.BrokerAppID, s.cfg.BrokerAdminRole, s.cfg.BrokerConsumerRole); err != nil {
		s.logger.Errorf("failed to authorize organization %s for broker app: %v", orgID, err)
		return classify(err, "Unexpected error creating tenant")
	}

	for _, role := range []string{s.cfg.BAESellerRole, s.cfg.BAECustomerRole, s.cfg.BAEAdminRole} {
		if err := s.idm.AuthorizeOrganizationRole(ctx, orgID, s.cfg.BAEAppID, role, "owner"); err != nil {
			s.logger.Errorf("failed to authorize organization %s for marketplace role %s: %v", orgID, role, err)
			return classify(err, "Unexpected error creating tenant")
		}
	}

	if err := s.addMembers(ctx, orgID, req.Users); err != nil {
		return err
	}

	if err := s.createAccessPolicies(ctx, id, orgID); err != nil {
		s.logger.Errorf("failed to create access policies for tenant %s: %v", id, err)
		return classify(err, "Unexpected error creating tenant")
	}

	t := &types.Tenant{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		OwnerID:        ownerID,
		OrganizationID: orgID,
	}

	if err := s.storage.SaveTenant(ctx, t); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return &WorkflowError{
				Kind:    KindConflict,
				Message: fmt.Sprintf("The tenant %s is already registered", id),
			}
		}
		s.logger.Errorf("failed to save tenant %s: %v", id, err)
		return classify(err, "Unexpected error creating tenant")
	}

	return nil
}

func (s *Service) addMembers(ctx context.Context, orgID string, users []UserSpec) error {
	for _, u := range users {
		// User names do not identify users in the IDM
		userID, err := s.idm.GetUserID(ctx, u.Name)
		if err != nil {
			s.logger.Errorf("failed to resolve user %s: %v", u.Name, err)
			return classify(err, "Unexpected error creating tenant")
		}

		// The IDM supports a single organization role per user
		var grantErr error
		switch {
		case slices.Contains(u.Roles, s.cfg.BrokerAdminRole):
			grantErr = s.idm.GrantOrganizationRole(ctx, orgID, userID, "owner")
		case slices.Contains(u.Roles, s.cfg.BrokerConsumerRole):
			grantErr = s.idm.GrantOrganizationRole(ctx, orgID, userID, "member")
		}

		if grantErr != nil {
			s.logger.Errorf("failed to grant organization role to user %s: %v", u.Name, grantErr)
			return classify(grantErr, "Unexpected error creating tenant")
		}
	}

	return nil
}

func (s *Service) createAccessPolicies(ctx context.Context, tenantID, orgID string) error {
	readPolicy := s.buildPolicy(orgID+"."+s.cfg.BrokerConsumerRole, "GET", tenantID)
	adminPolicy := s.buildPolicy(orgID+"."+s.cfg.BrokerAdminRole, "any", tenantID)

	return s.policies.AddAppPolicies(ctx, s.cfg.BrokerAppID, []umbrella.Policy{readPolicy, adminPolicy})
}

func (s *Service) buildPolicy(role, method, tenantID string) umbrella.Policy {
	return umbrella.Policy{
		ID:         uuid.NewString(),
		HTTPMethod: method,
		Regex:      "^/",
		Settings: umbrella.PolicySettings{
			RequiredHeaders: []umbrella.RequiredHeader{
				{Key: s.cfg.TenantHeader, Value: tenantID},
			},
			RequiredRoles:         []string{role},
			RequiredRolesOverride: true,
		},
	}
}

// ListTenants returns the caller's tenants, each enriched with live
// membership data from the IDM.
func (s *Service) ListTenants(ctx context.Context, ownerID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	tenants, err := s.storage.ListTenantsByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Errorf("failed to list tenants: %v", err)
		return nil, &WorkflowError{Kind: KindInternal, Message: "An error occurred reading tenants", err: err}
	}

	for _, t := range tenants {
		if err := s.enrich(ctx, t); err != nil {
			return nil, err
		}
	}

	return tenants, nil
}

// GetTenant returns a single tenant enriched with membership data. Only the
// owner may retrieve it.
func (s *Service) GetTenant(ctx context.Context, ownerID, tenantID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	t, err := s.storage.GetTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &WorkflowError{
				Kind:    KindNotFound,
				Message: fmt.Sprintf("Tenant %s does not exist", tenantID),
			}
		}
		s.logger.Errorf("failed to get tenant %s: %v", tenantID, err)
		return nil, &WorkflowError{Kind: KindInternal, Message: "An error occurred reading tenants", err: err}
	}

	if t.OwnerID != ownerID {
		s.logger.Security().AuthzFailure(ownerID, "tenant_read")
		return nil, &WorkflowError{
			Kind:    KindForbidden,
			Message: "You are not authorized to retrieve tenant info",
		}
	}

	if err := s.enrich(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) enrich(ctx context.Context, t *types.Tenant) error {
	members, err := s.idm.GetOrganizationMembers(ctx, t.OrganizationID)
	if err != nil {
		s.logger.Errorf("failed to read members of organization %s: %v", t.OrganizationID, err)
		return &WorkflowError{Kind: KindInternal, Message: "An error occurred reading tenants", err: err}
	}

	t.Users = make([]*types.TenantUser, 0, len(members))
	for _, m := range members {
		t.Users = append(t.Users, &types.TenantUser{
			ID:    m.UserID,
			Name:  m.Name,
			Roles: s.mapRoles(m),
		})
	}

	return nil
}

// mapRoles translates the IDM organization role to the gateway role
// vocabulary: every member is a consumer, owners are also admins.
func (s *Service) mapRoles(m keyrock.Member) []string {
	roles := []string{s.cfg.BrokerConsumerRole}

	if m.Role == "owner" {
		roles = append(roles, s.cfg.BrokerAdminRole)
	}

	return roles
}
