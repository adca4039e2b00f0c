// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type TenantStatus string

const (
	StatusActive    TenantStatus = "active"
	StatusSuspended TenantStatus = "suspended"
	StatusDeleted   TenantStatus = "deleted"
)

type OrgKind string

const (
	OrgKindOrganization OrgKind = "Organization"
	OrgKindUser         OrgKind = "User"
)

// TenantRecord is one onboarded tenant, keyed by the provider's
// installation identifier. Records are never physically deleted;
// StatusDeleted is the tombstone.
type TenantRecord struct {
	TenantID             int64             `db:"id"`
	OrgName              string            `db:"org_name"`
	OrgKind              OrgKind           `db:"org_kind"`
	Status               TenantStatus      `db:"status"`
	Tier                 string            `db:"tier"`
	MaxConcurrentRunners int               `db:"max_concurrent_runners"`
	CreatedAt            time.Time         `db:"created_at"`
	UpdatedAt            time.Time         `db:"updated_at"`
	Metadata             map[string]string `db:"metadata"`
}

// WorkflowJobEvent carries the fields consumed from the provider's
// workflow_job webhook payload.
type WorkflowJobEvent struct {
	Action       string       `json:"action" validate:"required"`
	WorkflowJob  WorkflowJob  `json:"workflow_job" validate:"required"`
	Repository   Repository   `json:"repository" validate:"required"`
	Installation Installation `json:"installation"`
	Sender       Sender       `json:"sender"`
}

type WorkflowJob struct {
	ID     int64    `json:"id" validate:"required"`
	RunID  int64    `json:"run_id"`
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
}

type Repository struct {
	Name     string  `json:"name"`
	FullName string  `json:"full_name" validate:"required"`
	Owner    Account `json:"owner"`
}

type Account struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
	Type  string `json:"type"`
}

type Sender struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
}

// InstallationEvent carries the fields consumed from the provider's
// installation webhook payload.
type InstallationEvent struct {
	Action       string             `json:"action" validate:"required"`
	Installation InstallationDetail `json:"installation" validate:"required"`
	Sender       Sender             `json:"sender"`
}

type InstallationDetail struct {
	ID      int64   `json:"id" validate:"required"`
	Account Account `json:"account"`
}

type Installation struct {
	ID int64 `json:"id"`
}

// RoutingMessage is the payload enqueued to a tier queue for one
// accepted job, consumed by the admission controller. TenantID is zero
// when the ingress boundary deferred the tenant check; InstallationID
// is always present so admission can resolve fail-closed.
type RoutingMessage struct {
	ID              string  `json:"id"`
	JobID           int64   `json:"job_id"`
	RunID           int64   `json:"run_id"`
	EventType       string  `json:"event_type"`
	RepositoryName  string  `json:"repository_name"`
	RepositoryOwner string  `json:"repository_owner"`
	InstallationID  int64   `json:"installation_id"`
	TenantID        int64   `json:"tenant_id,omitempty"`
	TierID          string  `json:"tier_id"`
	OwnerKind       OrgKind `json:"owner_kind"`
	TenantTier      string  `json:"tenant_tier,omitempty"`
}
