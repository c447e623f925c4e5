// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package tenant

// CreateTenantRequest is the provisioning payload.
type CreateTenantRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Users       []UserSpec `json:"users" validate:"omitempty,dive"`
}

// UserSpec lists a user to be added to the tenant organization together with
// the gateway roles requested for it.
type UserSpec struct {
	Name  string   `json:"name" validate:"required"`
	Roles []string `json:"roles" validate:"required"`
}
