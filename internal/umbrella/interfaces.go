// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package umbrella

import (
	"context"
)

// Policy is a gateway sub-url access rule restricting an HTTP method to
// callers presenting a required role for a given tenant header.
type Policy struct {
	ID         string         `json:"id"`
	HTTPMethod string         `json:"http_method"`
	Regex      string         `json:"regex"`
	Settings   PolicySettings `json:"settings"`
}

type PolicySettings struct {
	RequiredHeaders       []RequiredHeader `json:"required_headers"`
	RequiredRoles         []string         `json:"required_roles"`
	RequiredRolesOverride bool             `json:"required_roles_override"`
}

type RequiredHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ClientInterface interface {
	// AddAppPolicies appends access policies to the API backend serving the
	// given application.
	AddAppPolicies(ctx context.Context, appID string, policies []Policy) error
}
