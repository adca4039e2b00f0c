// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"context"

	"github.com/fleetforge/runner-control/internal/types"
	"github.com/fleetforge/runner-control/pkg/registry"
)

// RegistryInterface is the subset of the tenant registry the
// dispatcher consumes: the graceful-degradation lookup only.
type RegistryInterface interface {
	Enabled() bool
	Lookup(ctx context.Context, id int64) registry.LookupResult
}

// QueueInterface publishes routing messages to tier queues.
type QueueInterface interface {
	Publish(ctx context.Context, tierID string, msg *types.RoutingMessage) error
}

// ServiceInterface defines the dispatcher operations.
type ServiceInterface interface {
	Dispatch(ctx context.Context, ev *types.WorkflowJobEvent) Result
}

// LifecycleInterface handles installation lifecycle events arriving on
// the same webhook endpoint.
type LifecycleInterface interface {
	HandleInstallationEvent(ctx context.Context, ev *types.InstallationEvent) error
}
