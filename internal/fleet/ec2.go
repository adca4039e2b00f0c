// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package fleet is the compute-fleet collaborator. Runner instances
// are EC2 instances tagged with the owning tenant id; tiers map to
// launch templates.
package fleet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/tracing"
)

// TenantTagKey tags every runner instance with the tenant that owns it.
const TenantTagKey = "runner-tenant-id"

// LiveStates are the instance states that count against a tenant's
// concurrency limit.
var LiveStates = []string{"pending", "running"}

// TerminableStates are the instance states swept during offboarding.
var TerminableStates = []string{"pending", "running", "stopping", "stopped"}

type CreateSpec struct {
	TenantID       int64
	TierID         string
	LaunchTemplate string
	Count          int
}

type Client struct {
	ec2 EC2API

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// EC2API is the subset of the EC2 client the fleet uses.
type EC2API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error)
	RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error)
}

func NewClient(ctx context.Context, tracer tracing.TracingInterface, logger logging.LoggerInterface) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &Client{
		ec2:    ec2.NewFromConfig(cfg),
		tracer: tracer,
		logger: logger,
	}, nil
}

// ListInstances returns the ids of instances tagged with the tenant id
// in any of the given states. An empty result is a normal outcome.
func (c *Client) ListInstances(ctx context.Context, tenantID int64, states []string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "fleet.Client.ListInstances")
	defer span.End()

	input := &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("tag:" + TenantTagKey), Values: []string{strconv.FormatInt(tenantID, 10)}},
			{Name: aws.String("instance-state-name"), Values: states},
		},
	}

	var ids []string
	paginator := ec2.NewDescribeInstancesPaginator(c.ec2, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances for tenant %d: %w", tenantID, err)
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				ids = append(ids, aws.ToString(instance.InstanceId))
			}
		}
	}

	return ids, nil
}

// TerminateInstances issues one bulk terminate for the given ids.
func (c *Client) TerminateInstances(ctx context.Context, ids []string) error {
	ctx, span := c.tracer.Start(ctx, "fleet.Client.TerminateInstances")
	defer span.End()

	if len(ids) == 0 {
		return nil
	}

	_, err := c.ec2.TerminateInstances(ctx, &ec2.TerminateInstancesInput{InstanceIds: ids})
	if err != nil {
		return fmt.Errorf("failed to terminate instances: %w", err)
	}

	return nil
}

// LiveRunnerCount returns how many instances currently count against
// the tenant's concurrency limit.
func (c *Client) LiveRunnerCount(ctx context.Context, tenantID int64) (int, error) {
	ids, err := c.ListInstances(ctx, tenantID, LiveStates)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// CreateInstances launches runner instances for the tier from its
// launch template, tagged with the owning tenant.
func (c *Client) CreateInstances(ctx context.Context, spec CreateSpec) error {
	ctx, span := c.tracer.Start(ctx, "fleet.Client.CreateInstances")
	defer span.End()

	count := spec.Count
	if count <= 0 {
		count = 1
	}

	input := &ec2.RunInstancesInput{
		MinCount: aws.Int32(int32(count)),
		MaxCount: aws.Int32(int32(count)),
		LaunchTemplate: &ec2types.LaunchTemplateSpecification{
			LaunchTemplateName: aws.String(spec.LaunchTemplate),
		},
		TagSpecifications: []ec2types.TagSpecification{
			{
				ResourceType: ec2types.ResourceTypeInstance,
				Tags: []ec2types.Tag{
					{Key: aws.String(TenantTagKey), Value: aws.String(strconv.FormatInt(spec.TenantID, 10))},
					{Key: aws.String("runner-tier"), Value: aws.String(spec.TierID)},
				},
			},
		},
	}

	if _, err := c.ec2.RunInstances(ctx, input); err != nil {
		return fmt.Errorf("failed to create instances for tenant %d tier %s: %w", spec.TenantID, spec.TierID, err)
	}

	return nil
}
