// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/monitoring"
	"github.com/fleetforge/runner-control/internal/storage"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
)

func TestLookup(t *testing.T) {
	record := &types.TenantRecord{TenantID: 42, Status: types.StatusActive}
	storeErr := errors.New("store unreachable")

	testCases := []struct {
		name       string
		id         int64
		setupMocks func(*MockStorageInterface)
		expected   LookupOutcome
	}{
		{
			name: "found",
			id:   42,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetTenantByID(gomock.Any(), int64(42)).Return(record, nil)
			},
			expected: LookupFound,
		},
		{
			name: "not found",
			id:   42,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetTenantByID(gomock.Any(), int64(42)).Return(nil, storage.ErrNotFound)
			},
			expected: LookupNotFound,
		},
		{
			name: "store failure degrades",
			id:   42,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetTenantByID(gomock.Any(), int64(42)).Return(nil, storeErr)
			},
			expected: LookupError,
		},
		{
			name:       "invalid id",
			id:         0,
			setupMocks: func(m *MockStorageInterface) {},
			expected:   LookupNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newTestService(t)
			tc.setupMocks(mockStorage)

			res := s.Lookup(context.Background(), tc.id)
			if res.Outcome != tc.expected {
				t.Errorf("expected outcome %d, got %d", tc.expected, res.Outcome)
			}
			if tc.expected == LookupFound && res.Tenant == nil {
				t.Error("expected tenant on found result")
			}
		})
	}
}

func TestLookupDisabled(t *testing.T) {
	s := NewDisabledService(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	if res := s.Lookup(context.Background(), 42); res.Outcome != LookupDisabled {
		t.Fatalf("expected LookupDisabled, got %d", res.Outcome)
	}
}

func TestResolve(t *testing.T) {
	record := &types.TenantRecord{TenantID: 42, Status: types.StatusActive}
	storeErr := errors.New("store unreachable")

	testCases := []struct {
		name       string
		id         int64
		setupMocks func(*MockStorageInterface)
		expectFail bool
	}{
		{
			name: "found",
			id:   42,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetTenantByID(gomock.Any(), int64(42)).Return(record, nil)
			},
		},
		{
			name: "not found fails closed",
			id:   42,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetTenantByID(gomock.Any(), int64(42)).Return(nil, storage.ErrNotFound)
			},
			expectFail: true,
		},
		{
			name: "store failure fails closed",
			id:   42,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetTenantByID(gomock.Any(), int64(42)).Return(nil, storeErr)
			},
			expectFail: true,
		},
		{
			name:       "invalid id fails closed",
			id:         -1,
			setupMocks: func(m *MockStorageInterface) {},
			expectFail: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newTestService(t)
			tc.setupMocks(mockStorage)

			got, err := s.Resolve(context.Background(), tc.id)
			if tc.expectFail {
				var lookupErr *TenantLookupError
				if !errors.As(err, &lookupErr) {
					t.Fatalf("expected TenantLookupError, got %v", err)
				}
				if lookupErr.TenantID != tc.id {
					t.Errorf("expected attempted id %d on error, got %d", tc.id, lookupErr.TenantID)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.TenantID != tc.id {
				t.Errorf("unexpected record: %+v", got)
			}
		})
	}
}

// The two policies must diverge on an identical store failure: the
// ingress lookup degrades, the admission resolve fails closed.
func TestPolicyDivergenceOnStoreFailure(t *testing.T) {
	storeErr := errors.New("store unreachable")

	s, mockStorage, _ := newTestService(t)
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(42)).Return(nil, storeErr).Times(2)

	if res := s.Lookup(context.Background(), 42); res.Outcome != LookupError {
		t.Errorf("expected graceful LookupError, got %d", res.Outcome)
	}

	var lookupErr *TenantLookupError
	if _, err := s.Resolve(context.Background(), 42); !errors.As(err, &lookupErr) {
		t.Errorf("expected fail-closed TenantLookupError, got %v", err)
	}
}
