// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Tenant is the denormalized record persisted once provisioning succeeded.
// Users is filled in at read time from the identity provider, it is never
// stored locally.
type Tenant struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    string    `db:"description" json:"description"`
	OwnerID        string    `db:"owner_id" json:"user_id"`
	OrganizationID string    `db:"organization_id" json:"tenant_organization"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`

	Users []*TenantUser `db:"-" json:"users"`
}

// TenantUser is an organization member enriched with the gateway role
// vocabulary derived from its identity-provider role.
type TenantUser struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}
