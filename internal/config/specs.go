// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// DSN is the tenant store target. Multi-tenancy is enabled iff a
	// DSN is configured.
	DSN string `envconfig:"DSN"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AMQPURL string `envconfig:"amqp_url" required:"true"`

	TierConfigFile string `envconfig:"tier_config_file" default:"tiers.yaml"`
	DefaultTier    string `envconfig:"default_tier" default:"small"`

	WebhookSecret       string   `envconfig:"webhook_secret"`
	RepositoryAllowlist []string `envconfig:"repository_allowlist"`

	CacheTTL      time.Duration `envconfig:"tenant_cache_ttl" default:"60s"`
	CacheCapacity int           `envconfig:"tenant_cache_capacity" default:"1000"`

	QueueMaxReceiveCount int `envconfig:"queue_max_receive_count" default:"3"`
}
