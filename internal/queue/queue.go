// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package queue wraps the AMQP broker carrying one durable queue per
// capacity tier. Each tier queue has a dead-letter queue; deliveries
// that exceed the delivery limit are redriven there by the broker.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
)

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewClient(url string, tracer tracing.TracingInterface, logger logging.LoggerInterface) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	return &Client{
		conn:    conn,
		channel: ch,
		tracer:  tracer,
		logger:  logger,
	}, nil
}

func queueName(tierID string) string {
	return fmt.Sprintf("runner-jobs-%s", tierID)
}

func deadLetterName(tierID string) string {
	return fmt.Sprintf("runner-jobs-%s-dlq", tierID)
}

// DeclareTierQueue creates the durable main and dead-letter queues for
// a tier. maxReceiveCount bounds delivery attempts before the broker
// redrives a message to the dead-letter queue.
func (c *Client) DeclareTierQueue(tierID string, maxReceiveCount int) error {
	dlq := deadLetterName(tierID)

	if _, err := c.channel.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare dead-letter queue for tier %s: %w", tierID, err)
	}

	args := amqp.Table{
		"x-queue-type":              "quorum",
		"x-delivery-limit":          int32(maxReceiveCount),
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlq,
	}
	if _, err := c.channel.QueueDeclare(queueName(tierID), true, false, false, false, args); err != nil {
		return fmt.Errorf("failed to declare queue for tier %s: %w", tierID, err)
	}

	c.logger.Infof("declared queues for tier %s", tierID)
	return nil
}

// Publish enqueues one routing message to the tier's queue.
func (c *Client) Publish(ctx context.Context, tierID string, msg *types.RoutingMessage) error {
	_, span := c.tracer.Start(ctx, "queue.Client.Publish")
	defer span.End()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal routing message: %w", err)
	}

	err = c.channel.Publish(
		"",
		queueName(tierID),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.ID,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to tier %s: %w", tierID, err)
	}

	return nil
}

// Consume opens a delivery stream for a tier's queue with manual acks.
func (c *Client) Consume(tierID string) (<-chan amqp.Delivery, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open consumer channel for tier %s: %w", tierID, err)
	}

	deliveries, err := ch.Consume(
		queueName(tierID),
		fmt.Sprintf("admission-%s", tierID),
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to consume tier %s: %w", tierID, err)
	}

	return deliveries, nil
}

func (c *Client) Close() error {
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.conn.Close()
}
