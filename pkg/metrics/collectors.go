// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	JobsDispatched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobs_dispatched_total",
			Help: "Jobs routed to a tier queue.",
		},
		[]string{"tier"},
	)

	JobsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobs_rejected_total",
			Help: "Webhook events rejected at the ingress boundary.",
		},
		[]string{"reason"},
	)

	AdmissionsAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admissions_allowed_total",
			Help: "Admission decisions that allowed compute creation.",
		},
		[]string{"tier"},
	)

	AdmissionsDenied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admissions_denied_total",
			Help: "Admission decisions that denied compute creation.",
		},
		[]string{"tier", "reason"},
	)

	TenantCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tenant_cache_hits_total",
			Help: "Tenant registry reads served from the cache.",
		},
	)

	TenantCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tenant_cache_misses_total",
			Help: "Tenant registry reads that fell through to the store.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		JobsDispatched,
		JobsRejected,
		AdmissionsAllowed,
		AdmissionsDenied,
		TenantCacheHits,
		TenantCacheMisses,
	)
}
