// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
)

type ServiceInterface interface {
	ListUsers(ctx context.Context) ([]byte, error)
}

// IdentityProviderInterface is the subset of the IDM client this package needs.
type IdentityProviderInterface interface {
	GetUsers(ctx context.Context) ([]byte, error)
}
