// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/fleetforge/runner-control/internal/db"
	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/monitoring"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

// listPageSize bounds each page of the status listing; pages are
// drained internally so callers always see the full result set.
const listPageSize = 100

var tenantColumns = []string{"id", "org_name", "org_kind", "status", "tier", "max_concurrent_runners", "created_at", "updated_at", "metadata"}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.TenantRecord) (*types.TenantRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	metadata, err := json.Marshal(t.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tenant metadata: %w", err)
	}

	now := time.Now().UTC()

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "org_name", "org_kind", "status", "tier", "max_concurrent_runners", "created_at", "updated_at", "metadata").
		Values(t.TenantID, t.OrgName, t.OrgKind, t.Status, t.Tier, t.MaxConcurrentRunners, now, now, metadata).
		Suffix("ON CONFLICT (id) DO NOTHING RETURNING " + columnList()).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		// DO NOTHING yields no row when the key already exists.
		if isNoRows(err) || IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id int64) (*types.TenantRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) GetTenantByOrgName(ctx context.Context, name string) (*types.TenantRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByOrgName")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"org_name": name}).
		OrderBy("created_at").
		Limit(1).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by org name: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTenantsByStatus(ctx context.Context, status types.TenantStatus) ([]*types.TenantRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantsByStatus")
	defer span.End()

	var tenants []*types.TenantRecord
	var cursor int64

	for {
		rows, err := s.db.Statement(ctx).
			Select(tenantColumns...).
			From("tenants").
			Where(sq.Eq{"status": status}).
			Where(sq.Gt{"id": cursor}).
			OrderBy("id").
			Limit(listPageSize).
			QueryContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tenants: %w", err)
		}

		var page int
		for rows.Next() {
			t, err := scanTenant(rows)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan tenant: %w", err)
			}
			tenants = append(tenants, t)
			cursor = t.TenantID
			page++
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("error iterating tenant rows: %w", err)
		}
		rows.Close()

		if page < listPageSize {
			return tenants, nil
		}
	}
}

func (s *Storage) UpdateTenant(ctx context.Context, id int64, params UpdateParams) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	// Last write wins: concurrent updates to the same tenant are not
	// guarded by a version token.
	updateMap := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if params.Status != nil {
		updateMap["status"] = *params.Status
	}
	if params.Tier != nil {
		updateMap["tier"] = *params.Tier
	}
	if params.MaxConcurrentRunners != nil {
		updateMap["max_concurrent_runners"] = *params.MaxConcurrentRunners
	}

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTenant(row rowScanner) (*types.TenantRecord, error) {
	var t types.TenantRecord
	var metadata []byte

	err := row.Scan(&t.TenantID, &t.OrgName, &t.OrgKind, &t.Status, &t.Tier, &t.MaxConcurrentRunners, &t.CreatedAt, &t.UpdatedAt, &metadata)
	if err != nil {
		return nil, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &t.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tenant metadata: %w", err)
		}
	}

	return &t, nil
}

func columnList() string {
	list := tenantColumns[0]
	for _, c := range tenantColumns[1:] {
		list += ", " + c
	}
	return list
}
