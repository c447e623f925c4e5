// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package keyrock

import (
	"context"
)

// Member is an organization membership record as reported by the IDM.
type Member struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type ClientInterface interface {
	// CreateOrganization creates an organization owned by ownerID and returns its id.
	CreateOrganization(ctx context.Context, name, description, ownerID string) (string, error)
	// AuthorizeOrganization maps the application's admin role to organization
	// owners and its consumer role to organization members.
	AuthorizeOrganization(ctx context.Context, orgID, appID, adminRole, consumerRole string) error
	// AuthorizeOrganizationRole maps a single application role to the given
	// organization role.
	AuthorizeOrganizationRole(ctx context.Context, orgID, appID, role, orgRole string) error
	// GetUserID resolves a user name to its IDM id.
	GetUserID(ctx context.Context, username string) (string, error)
	// GrantOrganizationRole makes the user an owner or member of the organization.
	GrantOrganizationRole(ctx context.Context, orgID, userID, orgRole string) error
	GetOrganizationMembers(ctx context.Context, orgID string) ([]Member, error)
	// GetUsers returns the IDM user list verbatim.
	GetUsers(ctx context.Context) ([]byte, error)
}
