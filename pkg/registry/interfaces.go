// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"

	"github.com/fleetforge/runner-control/internal/storage"
	"github.com/fleetforge/runner-control/internal/types"
)

// StorageInterface is the subset of the tenant store the registry uses.
type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.TenantRecord) (*types.TenantRecord, error)
	GetTenantByID(ctx context.Context, id int64) (*types.TenantRecord, error)
	GetTenantByOrgName(ctx context.Context, name string) (*types.TenantRecord, error)
	ListTenantsByStatus(ctx context.Context, status types.TenantStatus) ([]*types.TenantRecord, error)
	UpdateTenant(ctx context.Context, id int64, params storage.UpdateParams) error
}

// ServiceInterface is the registry surface consumed by the dispatcher,
// the lifecycle handler and the admission controller.
type ServiceInterface interface {
	Enabled() bool
	Get(ctx context.Context, id int64) (*types.TenantRecord, error)
	Create(ctx context.Context, params CreateParams) (*types.TenantRecord, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*types.TenantRecord, error)
	ListByStatus(ctx context.Context, status types.TenantStatus) ([]*types.TenantRecord, error)
	FindByOrgName(ctx context.Context, name string) (*types.TenantRecord, error)
	Invalidate(id int64)
	Lookup(ctx context.Context, id int64) LookupResult
	Resolve(ctx context.Context, id int64) (*types.TenantRecord, error)
}
