// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/opplafy/tenant-manager/internal/keyrock"
	"github.com/opplafy/tenant-manager/internal/types"
	"github.com/opplafy/tenant-manager/internal/umbrella"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, ownerID string, req *CreateTenantRequest) error
	ListTenants(ctx context.Context, ownerID string) ([]*types.Tenant, error)
	GetTenant(ctx context.Context, ownerID, tenantID string) (*types.Tenant, error)
}

type StorageInterface interface {
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenantsByOwner(ctx context.Context, ownerID string) ([]*types.Tenant, error)
	SaveTenant(ctx context.Context, t *types.Tenant) error
}

type IdentityProviderInterface interface {
	CreateOrganization(ctx context.Context, name, description, ownerID string) (string, error)
	AuthorizeOrganization(ctx context.Context, orgID, appID, adminRole, consumerRole string) error
	AuthorizeOrganizationRole(ctx context.Context, orgID, appID, role, orgRole string) error
	GetUserID(ctx context.Context, username string) (string, error)
	GrantOrganizationRole(ctx context.Context, orgID, userID, orgRole string) error
	GetOrganizationMembers(ctx context.Context, orgID string) ([]keyrock.Member, error)
}

type PolicyClientInterface interface {
	AddAppPolicies(ctx context.Context, appID string, policies []umbrella.Policy) error
}
