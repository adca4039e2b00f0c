// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admission

import (
	"context"
	"encoding/json"

	"github.com/streadway/amqp"

	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
)

// Consumer drains one tier's queue and feeds each routing message to
// the admission service. Terminal outcomes are acked; retryable
// failures are nacked with requeue, and the broker's delivery limit
// redrives repeat offenders to the dead-letter queue.
type Consumer struct {
	service ServiceInterface
	tierID  string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewConsumer(
	service ServiceInterface,
	tierID string,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *Consumer {
	return &Consumer{
		service: service,
		tierID:  tierID,
		tracer:  tracer,
		logger:  logger,
	}
}

// Run processes deliveries until the channel closes or the context is
// cancelled.
func (c *Consumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	c.logger.Infof("admission consumer started for tier %s", c.tierID)

	for {
		select {
		case <-ctx.Done():
			c.logger.Infof("admission consumer for tier %s stopping", c.tierID)
			return
		case d, ok := <-deliveries:
			if !ok {
				c.logger.Warnf("delivery channel for tier %s closed", c.tierID)
				return
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	ctx, span := c.tracer.Start(ctx, "admission.Consumer.handle")
	defer span.End()

	var msg types.RoutingMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		// Malformed payloads can never succeed; send them straight
		// to the dead-letter queue.
		c.logger.Errorf("dropping malformed message on tier %s: %v", c.tierID, err)
		if err := d.Reject(false); err != nil {
			c.logger.Errorf("failed to reject message: %v", err)
		}
		return
	}

	decision, err := c.service.Admit(ctx, &msg)
	if err != nil {
		c.logger.Warnf("retrying job %d on tier %s: %v", msg.JobID, c.tierID, err)
		if err := d.Nack(false, true); err != nil {
			c.logger.Errorf("failed to nack message %s: %v", msg.ID, err)
		}
		return
	}

	if !decision.Allowed {
		c.logger.Infof("denied job %d on tier %s: %s", msg.JobID, c.tierID, decision.Reason)
	}

	if err := d.Ack(false); err != nil {
		c.logger.Errorf("failed to ack message %s: %v", msg.ID, err)
	}
}
