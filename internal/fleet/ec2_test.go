// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package fleet

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/tracing"
)

type fakeEC2 struct {
	describeInput  *ec2.DescribeInstancesInput
	describeOutput *ec2.DescribeInstancesOutput
	describeErr    error

	terminateInput *ec2.TerminateInstancesInput
	runInput       *ec2.RunInstancesInput
	runErr         error
}

func (f *fakeEC2) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	f.describeInput = params
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	if f.describeOutput != nil {
		return f.describeOutput, nil
	}
	return &ec2.DescribeInstancesOutput{}, nil
}

func (f *fakeEC2) TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error) {
	f.terminateInput = params
	return &ec2.TerminateInstancesOutput{}, nil
}

func (f *fakeEC2) RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error) {
	f.runInput = params
	if f.runErr != nil {
		return nil, f.runErr
	}
	return &ec2.RunInstancesOutput{}, nil
}

func newTestClient(api EC2API) *Client {
	return &Client{
		ec2:    api,
		tracer: tracing.NewNoopTracer(),
		logger: logging.NewNoopLogger(),
	}
}

func TestListInstancesFiltersByTenantAndState(t *testing.T) {
	fake := &fakeEC2{
		describeOutput: &ec2.DescribeInstancesOutput{
			Reservations: []ec2types.Reservation{
				{Instances: []ec2types.Instance{
					{InstanceId: aws.String("i-0aa")},
					{InstanceId: aws.String("i-0bb")},
				}},
			},
		},
	}
	c := newTestClient(fake)

	ids, err := c.ListInstances(context.Background(), 12345, TerminableStates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "i-0aa" || ids[1] != "i-0bb" {
		t.Fatalf("unexpected ids: %v", ids)
	}

	filters := fake.describeInput.Filters
	if len(filters) != 2 {
		t.Fatalf("expected 2 filters, got %d", len(filters))
	}
	if aws.ToString(filters[0].Name) != "tag:"+TenantTagKey || filters[0].Values[0] != "12345" {
		t.Errorf("unexpected tenant filter: %+v", filters[0])
	}
	if aws.ToString(filters[1].Name) != "instance-state-name" {
		t.Errorf("unexpected state filter: %+v", filters[1])
	}
}

func TestLiveRunnerCount(t *testing.T) {
	fake := &fakeEC2{
		describeOutput: &ec2.DescribeInstancesOutput{
			Reservations: []ec2types.Reservation{
				{Instances: []ec2types.Instance{{InstanceId: aws.String("i-0aa")}}},
			},
		},
	}
	c := newTestClient(fake)

	count, err := c.LiveRunnerCount(context.Background(), 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 live runner, got %d", count)
	}
	if fake.describeInput.Filters[1].Values[0] != "pending" {
		t.Errorf("expected the live states filter, got %v", fake.describeInput.Filters[1].Values)
	}
}

func TestTerminateInstancesSkipsEmptyList(t *testing.T) {
	fake := &fakeEC2{}
	c := newTestClient(fake)

	if err := c.TerminateInstances(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.terminateInput != nil {
		t.Error("expected no terminate call for an empty id list")
	}
}

func TestCreateInstancesTagsTenantAndTier(t *testing.T) {
	fake := &fakeEC2{}
	c := newTestClient(fake)

	err := c.CreateInstances(context.Background(), CreateSpec{
		TenantID:       12345,
		TierID:         "small",
		LaunchTemplate: "lt-small",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if aws.ToInt32(fake.runInput.MinCount) != 1 || aws.ToInt32(fake.runInput.MaxCount) != 1 {
		t.Errorf("expected a single instance by default, got %v/%v", fake.runInput.MinCount, fake.runInput.MaxCount)
	}
	if aws.ToString(fake.runInput.LaunchTemplate.LaunchTemplateName) != "lt-small" {
		t.Errorf("unexpected launch template: %v", fake.runInput.LaunchTemplate)
	}

	tags := fake.runInput.TagSpecifications[0].Tags
	if aws.ToString(tags[0].Key) != TenantTagKey || aws.ToString(tags[0].Value) != "12345" {
		t.Errorf("unexpected tenant tag: %+v", tags[0])
	}
}

func TestCreateInstancesError(t *testing.T) {
	fake := &fakeEC2{runErr: errors.New("capacity unavailable")}
	c := newTestClient(fake)

	err := c.CreateInstances(context.Background(), CreateSpec{TenantID: 12345, TierID: "small", LaunchTemplate: "lt-small"})
	if err == nil {
		t.Fatal("expected an error")
	}
}
