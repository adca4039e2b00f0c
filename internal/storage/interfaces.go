// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/fleetforge/runner-control/internal/types"
)

// UpdateParams is a partial tenant update. Nil fields are left
// untouched; updated_at is always bumped.
type UpdateParams struct {
	Status               *types.TenantStatus
	Tier                 *string
	MaxConcurrentRunners *int
}

type StorageInterface interface {
	// CreateTenant performs a conditional create: the write only
	// happens if no record with the same tenant id exists, otherwise
	// ErrDuplicateKey is returned and the stored record is untouched.
	CreateTenant(ctx context.Context, t *types.TenantRecord) (*types.TenantRecord, error)
	GetTenantByID(ctx context.Context, id int64) (*types.TenantRecord, error)
	GetTenantByOrgName(ctx context.Context, name string) (*types.TenantRecord, error)
	ListTenantsByStatus(ctx context.Context, status types.TenantStatus) ([]*types.TenantRecord, error)
	UpdateTenant(ctx context.Context, id int64, params UpdateParams) error
}
