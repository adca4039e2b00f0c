// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package lifecycle maps installation webhook actions onto tenant
// registry transitions: created onboards, suspend and unsuspend flip
// the status, deleted tombstones the record and tears down the
// tenant's remaining compute.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetforge/runner-control/internal/fleet"
	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/monitoring"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
	"github.com/fleetforge/runner-control/pkg/registry"
)

var _ ServiceInterface = (*Service)(nil)

const (
	actionCreated   = "created"
	actionDeleted   = "deleted"
	actionSuspend   = "suspend"
	actionUnsuspend = "unsuspend"
)

type Service struct {
	registry RegistryInterface
	fleet    FleetInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	reg RegistryInterface,
	fleetClient FleetInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		registry: reg,
		fleet:    fleetClient,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// HandleInstallationEvent applies one installation action. Unknown
// actions are logged and dropped, never failed, so new provider
// actions do not break the webhook endpoint.
func (s *Service) HandleInstallationEvent(ctx context.Context, ev *types.InstallationEvent) error {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.HandleInstallationEvent")
	defer span.End()

	if !s.registry.Enabled() {
		s.logger.Debugf("tenant registry disabled, ignoring installation %s for %d", ev.Action, ev.Installation.ID)
		return nil
	}

	switch ev.Action {
	case actionCreated:
		return s.onboard(ctx, ev)
	case actionDeleted:
		return s.offboard(ctx, ev)
	case actionSuspend:
		return s.setStatus(ctx, ev.Installation.ID, types.StatusSuspended)
	case actionUnsuspend:
		return s.setStatus(ctx, ev.Installation.ID, types.StatusActive)
	default:
		s.logger.Debugf("ignoring installation action %q for %d", ev.Action, ev.Installation.ID)
		return nil
	}
}

func (s *Service) onboard(ctx context.Context, ev *types.InstallationEvent) error {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.onboard")
	defer span.End()

	record, err := s.registry.Create(ctx, registry.CreateParams{
		TenantID: ev.Installation.ID,
		OrgName:  ev.Installation.Account.Login,
		OrgKind:  types.OrgKind(ev.Installation.Account.Type),
		Metadata: map[string]string{
			"installed_by": ev.Sender.Login,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to onboard tenant %d: %w", ev.Installation.ID, err)
	}

	s.logger.Infof("onboarded tenant %d (%s) on tier %s", record.TenantID, record.OrgName, record.Tier)
	return nil
}

// offboard tombstones the tenant and then terminates whatever
// instances are still attributed to it. Teardown failures are logged
// and swallowed; the status change is the durable part, the fleet
// reconciles ephemeral runners on its own.
func (s *Service) offboard(ctx context.Context, ev *types.InstallationEvent) error {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.offboard")
	defer span.End()

	if err := s.setStatus(ctx, ev.Installation.ID, types.StatusDeleted); err != nil {
		return err
	}

	ids, err := s.fleet.ListInstances(ctx, ev.Installation.ID, fleet.TerminableStates)
	if err != nil {
		s.logger.Errorf("failed to list instances for tenant %d: %v", ev.Installation.ID, err)
		return nil
	}
	if len(ids) == 0 {
		return nil
	}

	if err := s.fleet.TerminateInstances(ctx, ids); err != nil {
		s.logger.Errorf("failed to terminate %d instances for tenant %d: %v", len(ids), ev.Installation.ID, err)
		return nil
	}

	s.logger.Infof("terminated %d instances for offboarded tenant %d", len(ids), ev.Installation.ID)
	return nil
}

func (s *Service) setStatus(ctx context.Context, id int64, status types.TenantStatus) error {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.setStatus")
	defer span.End()

	_, err := s.registry.Update(ctx, id, registry.UpdateParams{Status: &status})
	if errors.Is(err, registry.ErrNotFound) {
		// Events can arrive for installations that predate the
		// registry; there is nothing to transition.
		s.logger.Warnf("installation %d has no tenant record, skipping %s", id, status)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to set tenant %d status to %s: %w", id, status, err)
	}

	s.logger.Infof("tenant %d status set to %s", id, status)
	return nil
}
