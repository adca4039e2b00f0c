// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

import (
	"context"

	"github.com/fleetforge/runner-control/internal/types"
	"github.com/fleetforge/runner-control/pkg/registry"
)

// RegistryInterface is the subset of the tenant registry the lifecycle
// handler mutates.
type RegistryInterface interface {
	Enabled() bool
	Create(ctx context.Context, params registry.CreateParams) (*types.TenantRecord, error)
	Update(ctx context.Context, id int64, params registry.UpdateParams) (*types.TenantRecord, error)
}

// FleetInterface lists and terminates a tenant's compute instances.
type FleetInterface interface {
	ListInstances(ctx context.Context, tenantID int64, states []string) ([]string, error)
	TerminateInstances(ctx context.Context, ids []string) error
}

// ServiceInterface applies installation lifecycle events to the
// tenant registry and the compute fleet.
type ServiceInterface interface {
	HandleInstallationEvent(ctx context.Context, ev *types.InstallationEvent) error
}
