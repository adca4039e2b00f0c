// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admission

import (
	"context"

	"github.com/fleetforge/runner-control/internal/fleet"
	"github.com/fleetforge/runner-control/internal/types"
)

// RegistryInterface is the fail-closed registry surface the admission
// controller depends on.
type RegistryInterface interface {
	Enabled() bool
	Resolve(ctx context.Context, id int64) (*types.TenantRecord, error)
}

// FleetInterface counts and creates a tenant's compute instances.
type FleetInterface interface {
	LiveRunnerCount(ctx context.Context, tenantID int64) (int, error)
	CreateInstances(ctx context.Context, spec fleet.CreateSpec) error
}

// ServiceInterface decides whether new compute may be created for a
// routed job.
type ServiceInterface interface {
	Admit(ctx context.Context, msg *types.RoutingMessage) (Decision, error)
}
