// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/fleetforge/runner-control/internal/cache"
	"github.com/fleetforge/runner-control/internal/config"
	"github.com/fleetforge/runner-control/internal/db"
	"github.com/fleetforge/runner-control/internal/fleet"
	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/monitoring/prometheus"
	"github.com/fleetforge/runner-control/internal/queue"
	"github.com/fleetforge/runner-control/internal/storage"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/pkg/admission"
	"github.com/fleetforge/runner-control/pkg/dispatch"
	"github.com/fleetforge/runner-control/pkg/lifecycle"
	"github.com/fleetforge/runner-control/pkg/registry"
	"github.com/fleetforge/runner-control/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the control plane",
	Long:  `Launch the webhook receiver and the per-tier admission consumers, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("runner-control", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	tiers, err := config.LoadTiers(specs.TierConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load tier configuration: %w", err)
	}

	var tenantRegistry *registry.Service
	if specs.DSN != "" {
		dbConfig := db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		}
		dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create database client: %v", err)
		}
		defer dbClient.Close()

		s := storage.NewStorage(dbClient, tracer, monitor, logger)
		tenantCache := cache.New(specs.CacheTTL, specs.CacheCapacity)

		tenantRegistry = registry.NewService(
			s,
			tenantCache,
			config.TierDefaults(tiers),
			specs.DefaultTier,
			tracer,
			monitor,
			logger,
		)
		logger.Info("Multi-tenancy is enabled")
	} else {
		tenantRegistry = registry.NewDisabledService(tracer, monitor, logger)
		logger.Info("Multi-tenancy is disabled, no DSN configured")
	}

	broker, err := queue.NewClient(specs.AMQPURL, tracer, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %v", err)
	}
	defer broker.Close()

	for _, tier := range tiers {
		if err := broker.DeclareTierQueue(tier.ID, specs.QueueMaxReceiveCount); err != nil {
			return fmt.Errorf("failed to declare queues: %v", err)
		}
	}

	fleetClient, err := fleet.NewClient(context.Background(), tracer, logger)
	if err != nil {
		return fmt.Errorf("failed to create fleet client: %v", err)
	}

	dispatcher := dispatch.NewService(
		tenantRegistry,
		broker,
		tiers,
		specs.RepositoryAllowlist,
		tracer,
		monitor,
		logger,
	)
	lifecycleService := lifecycle.NewService(tenantRegistry, fleetClient, tracer, monitor, logger)
	webhookAPI := dispatch.NewAPI(dispatcher, lifecycleService, specs.WebhookSecret, tracer, monitor, logger)

	admitter := admission.NewService(tenantRegistry, fleetClient, tiers, tracer, monitor, logger)

	consumerCtx, stopConsumers := context.WithCancel(context.Background())
	defer stopConsumers()

	for _, tier := range tiers {
		deliveries, err := broker.Consume(tier.ID)
		if err != nil {
			return fmt.Errorf("failed to start consumer for tier %s: %v", tier.ID, err)
		}
		go admission.NewConsumer(admitter, tier.ID, tracer, logger).Run(consumerCtx, deliveries)
	}

	router := web.NewRouter(
		webhookAPI,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	stopConsumers()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
