// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package dispatch validates inbound job-queued events, resolves the
// tenant through the graceful-degradation policy and routes jobs to
// the matching capacity tier's queue.
package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetforge/runner-control/internal/config"
	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/monitoring"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
	"github.com/fleetforge/runner-control/pkg/metrics"
	"github.com/fleetforge/runner-control/pkg/registry"
)

var _ ServiceInterface = (*Service)(nil)

// actionQueued is the only workflow_job action that produces a
// routing message; all other lifecycle actions of the job are no-ops.
const actionQueued = "queued"

type Outcome int

const (
	// OutcomeAccepted means one routing message was enqueued.
	OutcomeAccepted Outcome = iota
	// OutcomeNotQueued means the event was valid but required no
	// routing, e.g. a non-queued job action.
	OutcomeNotQueued
	// OutcomeRejected means the event was refused; Code carries the
	// HTTP-equivalent status.
	OutcomeRejected
)

type Result struct {
	Outcome Outcome
	Code    int
	Reason  string
	TierID  string
}

func accepted(tierID string) Result {
	return Result{Outcome: OutcomeAccepted, Code: http.StatusCreated, TierID: tierID}
}

func notQueued(reason string) Result {
	return Result{Outcome: OutcomeNotQueued, Code: http.StatusOK, Reason: reason}
}

func rejected(code int, reason string) Result {
	return Result{Outcome: OutcomeRejected, Code: code, Reason: reason}
}

type Service struct {
	registry RegistryInterface
	queue    QueueInterface

	// tiers is held in precedence order: exact-match tiers first.
	tiers        []config.TierSpec
	allowedRepos []string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	reg RegistryInterface,
	queue QueueInterface,
	tiers []config.TierSpec,
	allowedRepos []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		registry:     reg,
		queue:        queue,
		tiers:        sortTiers(tiers),
		allowedRepos: allowedRepos,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

// Dispatch routes one workflow job event. The only side effect is a
// single enqueue for an accepted job.
func (s *Service) Dispatch(ctx context.Context, ev *types.WorkflowJobEvent) Result {
	ctx, span := s.tracer.Start(ctx, "dispatch.Service.Dispatch")
	defer span.End()

	var tenant *types.TenantRecord

	if ev.Installation.ID <= 0 && s.registry.Enabled() {
		metrics.JobsRejected.WithLabelValues("missing_installation").Inc()
		return rejected(http.StatusBadRequest, "event carries no installation id")
	}

	if ev.Installation.ID > 0 {
		res := s.registry.Lookup(ctx, ev.Installation.ID)
		switch res.Outcome {
		case registry.LookupFound:
			if res.Tenant.Status != types.StatusActive {
				metrics.JobsRejected.WithLabelValues("tenant_inactive").Inc()
				return rejected(http.StatusForbidden, fmt.Sprintf("tenant %d is %s", res.Tenant.TenantID, res.Tenant.Status))
			}
			tenant = res.Tenant
		case registry.LookupNotFound:
			metrics.JobsRejected.WithLabelValues("unknown_tenant").Inc()
			return rejected(http.StatusForbidden, fmt.Sprintf("unknown tenant %d", ev.Installation.ID))
		case registry.LookupError:
			// Stay available during a store outage; the admission
			// boundary performs the authoritative check.
			s.logger.Warnf("deferring tenant check for installation %d", ev.Installation.ID)
		case registry.LookupDisabled:
		}
	}

	if len(s.allowedRepos) > 0 && !repoAllowed(s.allowedRepos, ev.Repository.FullName) {
		metrics.JobsRejected.WithLabelValues("repository_not_allowed").Inc()
		return rejected(http.StatusForbidden, fmt.Sprintf("repository %s is not in the allow-list", ev.Repository.FullName))
	}

	if ev.Action != actionQueued {
		return notQueued(fmt.Sprintf("ignoring workflow_job action %q", ev.Action))
	}

	tier, ok := matchTier(s.tiers, ev.WorkflowJob.Labels)
	if !ok {
		metrics.JobsRejected.WithLabelValues("no_matching_tier").Inc()
		return rejected(http.StatusAccepted, fmt.Sprintf("no tier matches labels [%s]", strings.Join(ev.WorkflowJob.Labels, ", ")))
	}

	msg := &types.RoutingMessage{
		ID:              uuid.NewString(),
		JobID:           ev.WorkflowJob.ID,
		RunID:           ev.WorkflowJob.RunID,
		EventType:       "workflow_job",
		RepositoryName:  ev.Repository.FullName,
		RepositoryOwner: ev.Repository.Owner.Login,
		InstallationID:  ev.Installation.ID,
		TierID:          tier.ID,
		OwnerKind:       types.OrgKind(ev.Repository.Owner.Type),
	}
	if tenant != nil {
		msg.TenantID = tenant.TenantID
		msg.TenantTier = tenant.Tier
	}

	if err := s.queue.Publish(ctx, tier.ID, msg); err != nil {
		s.logger.Errorf("failed to enqueue job %d to tier %s: %v", ev.WorkflowJob.ID, tier.ID, err)
		return rejected(http.StatusInternalServerError, "failed to enqueue job")
	}

	metrics.JobsDispatched.WithLabelValues(tier.ID).Inc()
	return accepted(tier.ID)
}

func repoAllowed(allowed []string, fullName string) bool {
	for _, repo := range allowed {
		if strings.EqualFold(repo, fullName) {
			return true
		}
	}
	return false
}
