// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package admission gates runner creation per routed job. Unlike the
// ingress dispatcher it resolves the tenant fail-closed: a job whose
// tenant cannot be confirmed active never gets compute.
package admission

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetforge/runner-control/internal/config"
	"github.com/fleetforge/runner-control/internal/fleet"
	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/monitoring"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
	"github.com/fleetforge/runner-control/pkg/metrics"
)

var _ ServiceInterface = (*Service)(nil)

// ErrQuotaExhausted is returned when the tenant already runs at its
// concurrency limit. It is retryable; capacity frees up as runners
// finish their single job.
var ErrQuotaExhausted = errors.New("tenant concurrency quota exhausted")

// ErrUnknownTier is returned for a message routed to a tier this
// process has no configuration for.
var ErrUnknownTier = errors.New("unknown tier")

// Decision is a terminal admission verdict. A denied Decision means
// the message must not be retried; retryable conditions are reported
// as errors instead.
type Decision struct {
	Allowed bool
	Reason  string
}

type Service struct {
	registry RegistryInterface
	fleet    FleetInterface

	tiers map[string]config.TierSpec

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	reg RegistryInterface,
	fleetClient FleetInterface,
	tiers []config.TierSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	byID := make(map[string]config.TierSpec, len(tiers))
	for _, tier := range tiers {
		byID[tier.ID] = tier
	}

	return &Service{
		registry: reg,
		fleet:    fleetClient,
		tiers:    byID,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Admit creates one runner for the message's job if the tenant is
// confirmed active and below its concurrency limit. A registry
// resolution failure is returned as a *registry.TenantLookupError so
// the consumer can retry the message rather than silently drop it.
func (s *Service) Admit(ctx context.Context, msg *types.RoutingMessage) (Decision, error) {
	ctx, span := s.tracer.Start(ctx, "admission.Service.Admit")
	defer span.End()

	tier, ok := s.tiers[msg.TierID]
	if !ok {
		return Decision{}, fmt.Errorf("%w: %s", ErrUnknownTier, msg.TierID)
	}

	if !s.registry.Enabled() {
		return s.launch(ctx, msg, tier, msg.InstallationID)
	}

	tenantID := msg.TenantID
	if tenantID <= 0 {
		// The ingress boundary deferred the tenant check; resolve
		// from the installation id now, fail-closed.
		tenantID = msg.InstallationID
	}

	tenant, err := s.registry.Resolve(ctx, tenantID)
	if err != nil {
		return Decision{}, err
	}

	if tenant.Status != types.StatusActive {
		metrics.AdmissionsDenied.WithLabelValues(msg.TierID, "tenant_inactive").Inc()
		return Decision{Reason: fmt.Sprintf("tenant %d is %s", tenant.TenantID, tenant.Status)}, nil
	}

	live, err := s.fleet.LiveRunnerCount(ctx, tenant.TenantID)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to count live runners for tenant %d: %w", tenant.TenantID, err)
	}
	if live >= tenant.MaxConcurrentRunners {
		metrics.AdmissionsDenied.WithLabelValues(msg.TierID, "quota_exhausted").Inc()
		return Decision{}, fmt.Errorf("tenant %d at %d/%d runners: %w", tenant.TenantID, live, tenant.MaxConcurrentRunners, ErrQuotaExhausted)
	}

	return s.launch(ctx, msg, tier, tenant.TenantID)
}

func (s *Service) launch(ctx context.Context, msg *types.RoutingMessage, tier config.TierSpec, tenantID int64) (Decision, error) {
	err := s.fleet.CreateInstances(ctx, fleet.CreateSpec{
		TenantID:       tenantID,
		TierID:         tier.ID,
		LaunchTemplate: tier.LaunchTemplate,
		Count:          1,
	})
	if err != nil {
		return Decision{}, fmt.Errorf("failed to create runner for job %d: %w", msg.JobID, err)
	}

	metrics.AdmissionsAllowed.WithLabelValues(tier.ID).Inc()
	s.logger.Infof("admitted job %d for tenant %d on tier %s", msg.JobID, tenantID, tier.ID)
	return Decision{Allowed: true}, nil
}
