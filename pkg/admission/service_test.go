// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admission

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/fleetforge/runner-control/internal/config"
	"github.com/fleetforge/runner-control/internal/fleet"
	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/monitoring"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
	"github.com/fleetforge/runner-control/pkg/registry"
)

//go:generate mockgen -build_flags=--mod=mod -package admission -destination ./mock_admission.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockRegistryInterface, *MockFleetInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRegistry := NewMockRegistryInterface(ctrl)
	mockFleet := NewMockFleetInterface(ctrl)

	tiers := []config.TierSpec{
		{ID: "small", LaunchTemplate: "lt-small", MaxConcurrentRunners: 10},
	}

	s := NewService(
		mockRegistry,
		mockFleet,
		tiers,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return s, mockRegistry, mockFleet
}

func routedMessage() *types.RoutingMessage {
	return &types.RoutingMessage{
		ID:             "msg-1",
		JobID:          777,
		TierID:         "small",
		InstallationID: 12345,
		TenantID:       12345,
	}
}

func TestService_AdmitAllowed(t *testing.T) {
	s, mockRegistry, mockFleet := newTestService(t)

	mockRegistry.EXPECT().Enabled().Return(true)
	mockRegistry.EXPECT().Resolve(gomock.Any(), int64(12345)).Return(
		&types.TenantRecord{TenantID: 12345, Status: types.StatusActive, MaxConcurrentRunners: 10}, nil,
	)
	mockFleet.EXPECT().LiveRunnerCount(gomock.Any(), int64(12345)).Return(3, nil)
	mockFleet.EXPECT().CreateInstances(gomock.Any(), fleet.CreateSpec{
		TenantID:       12345,
		TierID:         "small",
		LaunchTemplate: "lt-small",
		Count:          1,
	}).Return(nil)

	decision, err := s.Admit(context.Background(), routedMessage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Fatalf("expected an allow, got %+v", decision)
	}
}

func TestService_AdmitDeniesInactiveTenant(t *testing.T) {
	s, mockRegistry, _ := newTestService(t)

	mockRegistry.EXPECT().Enabled().Return(true)
	mockRegistry.EXPECT().Resolve(gomock.Any(), int64(12345)).Return(
		&types.TenantRecord{TenantID: 12345, Status: types.StatusSuspended, MaxConcurrentRunners: 10}, nil,
	)

	decision, err := s.Admit(context.Background(), routedMessage())
	if err != nil {
		t.Fatalf("expected a terminal denial, not an error: %v", err)
	}
	if decision.Allowed {
		t.Fatal("expected a denial for a suspended tenant")
	}
	if decision.Reason == "" {
		t.Error("expected the denial to carry a reason")
	}
}

func TestService_AdmitQuotaExhaustedIsRetryable(t *testing.T) {
	s, mockRegistry, mockFleet := newTestService(t)

	mockRegistry.EXPECT().Enabled().Return(true)
	mockRegistry.EXPECT().Resolve(gomock.Any(), int64(12345)).Return(
		&types.TenantRecord{TenantID: 12345, Status: types.StatusActive, MaxConcurrentRunners: 10}, nil,
	)
	mockFleet.EXPECT().LiveRunnerCount(gomock.Any(), int64(12345)).Return(10, nil)

	_, err := s.Admit(context.Background(), routedMessage())
	if !errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("expected ErrQuotaExhausted, got %v", err)
	}
}

func TestService_AdmitFailsClosedOnResolveError(t *testing.T) {
	s, mockRegistry, _ := newTestService(t)

	lookupErr := &registry.TenantLookupError{TenantID: 12345, Err: errors.New("store unreachable")}

	mockRegistry.EXPECT().Enabled().Return(true)
	mockRegistry.EXPECT().Resolve(gomock.Any(), int64(12345)).Return(nil, lookupErr)

	_, err := s.Admit(context.Background(), routedMessage())

	var tle *registry.TenantLookupError
	if !errors.As(err, &tle) {
		t.Fatalf("expected a TenantLookupError, got %v", err)
	}
	if tle.TenantID != 12345 {
		t.Errorf("expected tenant id 12345 on the error, got %d", tle.TenantID)
	}
}

func TestService_AdmitResolvesDeferredMessages(t *testing.T) {
	s, mockRegistry, mockFleet := newTestService(t)

	msg := routedMessage()
	msg.TenantID = 0

	mockRegistry.EXPECT().Enabled().Return(true)
	mockRegistry.EXPECT().Resolve(gomock.Any(), int64(12345)).Return(
		&types.TenantRecord{TenantID: 12345, Status: types.StatusActive, MaxConcurrentRunners: 10}, nil,
	)
	mockFleet.EXPECT().LiveRunnerCount(gomock.Any(), int64(12345)).Return(0, nil)
	mockFleet.EXPECT().CreateInstances(gomock.Any(), gomock.Any()).Return(nil)

	decision, err := s.Admit(context.Background(), msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Fatalf("expected an allow, got %+v", decision)
	}
}

func TestService_AdmitSkipsGateWhenRegistryDisabled(t *testing.T) {
	s, mockRegistry, mockFleet := newTestService(t)

	mockRegistry.EXPECT().Enabled().Return(false)
	mockFleet.EXPECT().CreateInstances(gomock.Any(), fleet.CreateSpec{
		TenantID:       12345,
		TierID:         "small",
		LaunchTemplate: "lt-small",
		Count:          1,
	}).Return(nil)

	decision, err := s.Admit(context.Background(), routedMessage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Fatalf("expected an allow, got %+v", decision)
	}
}

func TestService_AdmitUnknownTier(t *testing.T) {
	s, _, _ := newTestService(t)

	msg := routedMessage()
	msg.TierID = "xlarge"

	_, err := s.Admit(context.Background(), msg)
	if !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("expected ErrUnknownTier, got %v", err)
	}
}

func TestService_AdmitCountErrorIsRetryable(t *testing.T) {
	s, mockRegistry, mockFleet := newTestService(t)

	mockRegistry.EXPECT().Enabled().Return(true)
	mockRegistry.EXPECT().Resolve(gomock.Any(), int64(12345)).Return(
		&types.TenantRecord{TenantID: 12345, Status: types.StatusActive, MaxConcurrentRunners: 10}, nil,
	)
	mockFleet.EXPECT().LiveRunnerCount(gomock.Any(), int64(12345)).Return(0, errors.New("api throttled"))

	_, err := s.Admit(context.Background(), routedMessage())
	if err == nil {
		t.Fatal("expected an error when the live count is unavailable")
	}
}
