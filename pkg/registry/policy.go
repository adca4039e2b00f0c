// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetforge/runner-control/internal/storage"
	"github.com/fleetforge/runner-control/internal/types"
)

// The same cache/store pair is consumed through two outcome contracts.
// Lookup degrades gracefully for the ingress boundary; Resolve fails
// closed for the admission boundary. Collapsing them into one
// "nil on any problem" function would make admission fail open.

type LookupOutcome int

const (
	// LookupFound carries a tenant record.
	LookupFound LookupOutcome = iota
	// LookupNotFound is a well-formed negative result.
	LookupNotFound
	// LookupError means the store could not be reached; the caller
	// proceeds cautiously and defers the authoritative check.
	LookupError
	// LookupDisabled means multi-tenancy is not configured.
	LookupDisabled
)

type LookupResult struct {
	Outcome LookupOutcome
	Tenant  *types.TenantRecord
}

// TenantLookupError is the fail-closed policy's failure, carrying the
// identifier that could not be authoritatively confirmed.
type TenantLookupError struct {
	TenantID int64
	Err      error
}

func (e *TenantLookupError) Error() string {
	return fmt.Sprintf("tenant lookup failed for %d: %v", e.TenantID, e.Err)
}

func (e *TenantLookupError) Unwrap() error {
	return e.Err
}

var errInvalidTenantID = errors.New("invalid tenant identifier")

// Lookup is the graceful-degradation policy used at the webhook
// ingress. Storage failures surface as LookupError, never as a reject.
func (s *Service) Lookup(ctx context.Context, id int64) LookupResult {
	ctx, span := s.tracer.Start(ctx, "registry.Service.Lookup")
	defer span.End()

	if !s.enabled {
		return LookupResult{Outcome: LookupDisabled}
	}

	if id <= 0 {
		return LookupResult{Outcome: LookupNotFound}
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return LookupResult{Outcome: LookupNotFound}
		}
		s.logger.Warnf("tenant store unreachable for %d, degrading: %v", id, err)
		return LookupResult{Outcome: LookupError}
	}

	return LookupResult{Outcome: LookupFound, Tenant: record}
}

// Resolve is the fail-closed policy used at the admission boundary. A
// missing tenant, an invalid identifier and a storage failure all
// surface as a TenantLookupError so the admission decision is blocked.
func (s *Service) Resolve(ctx context.Context, id int64) (*types.TenantRecord, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Service.Resolve")
	defer span.End()

	if !s.enabled {
		return nil, &TenantLookupError{TenantID: id, Err: errors.New("tenant store not configured")}
	}

	if id <= 0 {
		return nil, &TenantLookupError{TenantID: id, Err: errInvalidTenantID}
	}

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, &TenantLookupError{TenantID: id, Err: err}
	}

	return record, nil
}
