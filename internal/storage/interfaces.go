// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/opplafy/tenant-manager/internal/types"
)

type StorageInterface interface {
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenantsByOwner(ctx context.Context, ownerID string) ([]*types.Tenant, error)
	SaveTenant(ctx context.Context, t *types.Tenant) error
}
