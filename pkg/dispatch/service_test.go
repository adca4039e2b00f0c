// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/monitoring"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
	"github.com/fleetforge/runner-control/pkg/registry"
)

//go:generate mockgen -build_flags=--mod=mod -package dispatch -destination ./mock_dispatch.go -source=./interfaces.go

func newTestDispatcher(t *testing.T, allowedRepos []string) (*Service, *MockRegistryInterface, *MockQueueInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRegistry := NewMockRegistryInterface(ctrl)
	mockQueue := NewMockQueueInterface(ctrl)

	s := NewService(
		mockRegistry,
		mockQueue,
		testTiers(),
		allowedRepos,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return s, mockRegistry, mockQueue
}

func queuedJobEvent() *types.WorkflowJobEvent {
	return &types.WorkflowJobEvent{
		Action: "queued",
		WorkflowJob: types.WorkflowJob{
			ID:     777,
			RunID:  888,
			Name:   "build",
			Labels: []string{"self-hosted", "linux", "x64", "small"},
		},
		Repository: types.Repository{
			Name:     "widgets",
			FullName: "acme/widgets",
			Owner:    types.Account{Login: "acme", Type: "Organization"},
		},
		Installation: types.Installation{ID: 12345},
	}
}

func activeTenant() *types.TenantRecord {
	return &types.TenantRecord{
		TenantID:             12345,
		OrgName:              "acme",
		Status:               types.StatusActive,
		Tier:                 "small",
		MaxConcurrentRunners: 10,
	}
}

func TestService_Dispatch_Accepted(t *testing.T) {
	s, mockRegistry, mockQueue := newTestDispatcher(t, nil)

	mockRegistry.EXPECT().Lookup(gomock.Any(), int64(12345)).Return(
		registry.LookupResult{Outcome: registry.LookupFound, Tenant: activeTenant()},
	)
	mockQueue.EXPECT().Publish(gomock.Any(), "small", gomock.Any()).DoAndReturn(
		func(_ context.Context, tierID string, msg *types.RoutingMessage) error {
			if msg.ID == "" {
				t.Error("expected a generated message id")
			}
			if msg.JobID != 777 || msg.RunID != 888 {
				t.Errorf("unexpected job identifiers: %d/%d", msg.JobID, msg.RunID)
			}
			if msg.TenantID != 12345 || msg.TenantTier != "small" {
				t.Errorf("expected tenant fields on the message, got %d/%q", msg.TenantID, msg.TenantTier)
			}
			if msg.InstallationID != 12345 {
				t.Errorf("expected installation id 12345, got %d", msg.InstallationID)
			}
			return nil
		},
	)

	res := s.Dispatch(context.Background(), queuedJobEvent())

	if res.Outcome != OutcomeAccepted {
		t.Fatalf("expected accepted, got %+v", res)
	}
	if res.Code != http.StatusCreated || res.TierID != "small" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestService_Dispatch_MissingInstallation(t *testing.T) {
	s, mockRegistry, _ := newTestDispatcher(t, nil)

	mockRegistry.EXPECT().Enabled().Return(true)

	ev := queuedJobEvent()
	ev.Installation.ID = 0

	res := s.Dispatch(context.Background(), ev)

	if res.Outcome != OutcomeRejected || res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 rejection, got %+v", res)
	}
}

func TestService_Dispatch_TenantGate(t *testing.T) {
	testCases := []struct {
		name         string
		lookup       registry.LookupResult
		expectedCode int
		reasonPart   string
	}{
		{
			name: "suspended tenant",
			lookup: registry.LookupResult{
				Outcome: registry.LookupFound,
				Tenant:  &types.TenantRecord{TenantID: 12345, Status: types.StatusSuspended},
			},
			expectedCode: http.StatusForbidden,
			reasonPart:   "suspended",
		},
		{
			name: "deleted tenant",
			lookup: registry.LookupResult{
				Outcome: registry.LookupFound,
				Tenant:  &types.TenantRecord{TenantID: 12345, Status: types.StatusDeleted},
			},
			expectedCode: http.StatusForbidden,
			reasonPart:   "deleted",
		},
		{
			name:         "unknown tenant",
			lookup:       registry.LookupResult{Outcome: registry.LookupNotFound},
			expectedCode: http.StatusForbidden,
			reasonPart:   "unknown tenant",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockRegistry, _ := newTestDispatcher(t, nil)

			mockRegistry.EXPECT().Lookup(gomock.Any(), int64(12345)).Return(tc.lookup)

			res := s.Dispatch(context.Background(), queuedJobEvent())

			if res.Outcome != OutcomeRejected || res.Code != tc.expectedCode {
				t.Fatalf("expected %d rejection, got %+v", tc.expectedCode, res)
			}
			if !strings.Contains(res.Reason, tc.reasonPart) {
				t.Errorf("expected reason to mention %q, got %q", tc.reasonPart, res.Reason)
			}
		})
	}
}

func TestService_Dispatch_LookupErrorDefersToAdmission(t *testing.T) {
	s, mockRegistry, mockQueue := newTestDispatcher(t, nil)

	mockRegistry.EXPECT().Lookup(gomock.Any(), int64(12345)).Return(
		registry.LookupResult{Outcome: registry.LookupError},
	)
	mockQueue.EXPECT().Publish(gomock.Any(), "small", gomock.Any()).DoAndReturn(
		func(_ context.Context, tierID string, msg *types.RoutingMessage) error {
			if msg.TenantID != 0 {
				t.Errorf("expected no tenant id on a deferred message, got %d", msg.TenantID)
			}
			if msg.InstallationID != 12345 {
				t.Errorf("expected installation id for the downstream resolve, got %d", msg.InstallationID)
			}
			return nil
		},
	)

	res := s.Dispatch(context.Background(), queuedJobEvent())

	if res.Outcome != OutcomeAccepted {
		t.Fatalf("expected the job to be accepted despite the store failure, got %+v", res)
	}
}

func TestService_Dispatch_RepositoryAllowlist(t *testing.T) {
	s, mockRegistry, mockQueue := newTestDispatcher(t, []string{"acme/widgets"})

	mockRegistry.EXPECT().Lookup(gomock.Any(), int64(12345)).Return(
		registry.LookupResult{Outcome: registry.LookupFound, Tenant: activeTenant()},
	).Times(2)
	mockQueue.EXPECT().Publish(gomock.Any(), "small", gomock.Any()).Return(nil)

	res := s.Dispatch(context.Background(), queuedJobEvent())
	if res.Outcome != OutcomeAccepted {
		t.Fatalf("expected allow-listed repository to pass, got %+v", res)
	}

	ev := queuedJobEvent()
	ev.Repository.FullName = "acme/other"

	res = s.Dispatch(context.Background(), ev)
	if res.Outcome != OutcomeRejected || res.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a repository off the allow-list, got %+v", res)
	}
}

func TestService_Dispatch_NonQueuedAction(t *testing.T) {
	s, mockRegistry, _ := newTestDispatcher(t, nil)

	mockRegistry.EXPECT().Lookup(gomock.Any(), int64(12345)).Return(
		registry.LookupResult{Outcome: registry.LookupFound, Tenant: activeTenant()},
	)

	ev := queuedJobEvent()
	ev.Action = "completed"

	res := s.Dispatch(context.Background(), ev)

	if res.Outcome != OutcomeNotQueued || res.Code != http.StatusOK {
		t.Fatalf("expected a no-op for a completed job, got %+v", res)
	}
}

func TestService_Dispatch_NoMatchingTier(t *testing.T) {
	s, mockRegistry, _ := newTestDispatcher(t, nil)

	mockRegistry.EXPECT().Lookup(gomock.Any(), int64(12345)).Return(
		registry.LookupResult{Outcome: registry.LookupFound, Tenant: activeTenant()},
	)

	ev := queuedJobEvent()
	ev.WorkflowJob.Labels = []string{"windows", "arm64"}

	res := s.Dispatch(context.Background(), ev)

	if res.Outcome != OutcomeRejected || res.Code != http.StatusAccepted {
		t.Fatalf("expected a 202 rejection, got %+v", res)
	}
	if !strings.Contains(res.Reason, "windows") {
		t.Errorf("expected the unmatched labels in the reason, got %q", res.Reason)
	}
}

func TestService_Dispatch_PublishFailure(t *testing.T) {
	s, mockRegistry, mockQueue := newTestDispatcher(t, nil)

	mockRegistry.EXPECT().Lookup(gomock.Any(), int64(12345)).Return(
		registry.LookupResult{Outcome: registry.LookupFound, Tenant: activeTenant()},
	)
	mockQueue.EXPECT().Publish(gomock.Any(), "small", gomock.Any()).Return(errors.New("broker unavailable"))

	res := s.Dispatch(context.Background(), queuedJobEvent())

	if res.Outcome != OutcomeRejected || res.Code != http.StatusInternalServerError {
		t.Fatalf("expected a 500 rejection, got %+v", res)
	}
}
