// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package registry exposes tenant CRUD over a read-through cache and
// the two lookup policies consumed at the ingress and admission
// boundaries.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetforge/runner-control/internal/cache"
	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/monitoring"
	"github.com/fleetforge/runner-control/internal/storage"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
	"github.com/fleetforge/runner-control/pkg/metrics"
)

var _ ServiceInterface = (*Service)(nil)

var ErrNotFound = storage.ErrNotFound

// ErrUnknownTier is returned when a create or update names a tier that
// is not in the configured tier table.
var ErrUnknownTier = errors.New("unknown tier")

type CreateParams struct {
	TenantID int64
	OrgName  string
	OrgKind  types.OrgKind
	// Tier is optional; the configured default tier applies when empty.
	Tier string
	// MaxConcurrentRunners overrides the tier default when positive.
	MaxConcurrentRunners int
	// Metadata is write-once attribution, never required for
	// correctness.
	Metadata map[string]string
}

type UpdateParams struct {
	Status *types.TenantStatus
	Tier   *string
	// MaxConcurrentRunners is an explicit override. When Tier changes
	// without it, the limit is recomputed from the tier table.
	MaxConcurrentRunners *int
}

type Service struct {
	storage StorageInterface
	cache   *cache.TenantCache

	tierDefaults map[string]int
	defaultTier  string
	enabled      bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	cache *cache.TenantCache,
	tierDefaults map[string]int,
	defaultTier string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:      storage,
		cache:        cache,
		tierDefaults: tierDefaults,
		defaultTier:  defaultTier,
		enabled:      true,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

// NewDisabledService returns a registry for deployments without a
// configured tenant store. Every Lookup reports LookupDisabled.
func NewDisabledService(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		enabled: false,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Enabled() bool {
	return s.enabled
}

// Get returns the tenant record, served from the cache within the TTL
// window. A store read that reports the record gone purges any stale
// cache entry rather than caching the negative result.
func (s *Service) Get(ctx context.Context, id int64) (*types.TenantRecord, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Service.Get")
	defer span.End()

	if record, ok := s.cache.Get(id); ok {
		metrics.TenantCacheHits.Inc()
		return record, nil
	}
	metrics.TenantCacheMisses.Inc()

	record, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.cache.Remove(id)
		}
		return nil, err
	}

	s.cache.Set(id, record)
	return record, nil
}

// Create onboards a tenant. Creation is idempotent: when the record
// already exists the stored record is returned instead of an error.
func (s *Service) Create(ctx context.Context, params CreateParams) (*types.TenantRecord, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Service.Create")
	defer span.End()

	tier := params.Tier
	if tier == "" {
		tier = s.defaultTier
	}

	limit := params.MaxConcurrentRunners
	if limit <= 0 {
		d, ok := s.tierDefaults[tier]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTier, tier)
		}
		limit = d
	}

	record := &types.TenantRecord{
		TenantID:             params.TenantID,
		OrgName:              params.OrgName,
		OrgKind:              params.OrgKind,
		Status:               types.StatusActive,
		Tier:                 tier,
		MaxConcurrentRunners: limit,
		Metadata:             params.Metadata,
	}

	created, err := s.storage.CreateTenant(ctx, record)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			existing, err := s.storage.GetTenantByID(ctx, params.TenantID)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch tenant after create conflict: %w", err)
			}
			s.cache.Set(existing.TenantID, existing)
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.cache.Set(created.TenantID, created)
	return created, nil
}

// Update applies a partial update. Changing the tier without an
// explicit concurrency override recomputes the limit from the tier
// table. The cache entry is invalidated so this process reads its own
// write.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*types.TenantRecord, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Service.Update")
	defer span.End()

	storeParams := storage.UpdateParams{
		Status:               params.Status,
		Tier:                 params.Tier,
		MaxConcurrentRunners: params.MaxConcurrentRunners,
	}

	if params.Tier != nil && params.MaxConcurrentRunners == nil {
		d, ok := s.tierDefaults[*params.Tier]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTier, *params.Tier)
		}
		storeParams.MaxConcurrentRunners = &d
	}

	if err := s.storage.UpdateTenant(ctx, id, storeParams); err != nil {
		return nil, err
	}

	s.cache.Remove(id)

	updated, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated tenant: %w", err)
	}

	s.cache.Set(id, updated)
	return updated, nil
}

func (s *Service) ListByStatus(ctx context.Context, status types.TenantStatus) ([]*types.TenantRecord, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Service.ListByStatus")
	defer span.End()

	return s.storage.ListTenantsByStatus(ctx, status)
}

func (s *Service) FindByOrgName(ctx context.Context, name string) (*types.TenantRecord, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Service.FindByOrgName")
	defer span.End()

	return s.storage.GetTenantByOrgName(ctx, name)
}

// Invalidate drops the cache entry for a tenant; callers that just
// performed a write use it for immediate in-process consistency.
func (s *Service) Invalidate(id int64) {
	if s.cache != nil {
		s.cache.Remove(id)
	}
}
