// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTiers = `
tiers:
  - id: small
    label_matchers:
      - [self-hosted, linux, x64, small]
    exact_match: true
    max_concurrent_runners: 10
    launch_template: runner-small
  - id: large
    label_matchers:
      - [self-hosted, linux, x64, large]
      - [self-hosted, linux, arm64, large]
    exact_match: false
    max_concurrent_runners: 4
    launch_template: runner-large
`

func writeTierFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tiers.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write tier file: %v", err)
	}
	return path
}

func TestLoadTiers(t *testing.T) {
	tiers, err := LoadTiers(writeTierFile(t, sampleTiers))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tiers) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(tiers))
	}
	if tiers[0].ID != "small" || !tiers[0].ExactMatch {
		t.Errorf("unexpected first tier: %+v", tiers[0])
	}
	if len(tiers[1].LabelMatchers) != 2 {
		t.Errorf("expected 2 label matcher alternatives for large, got %d", len(tiers[1].LabelMatchers))
	}

	defaults := TierDefaults(tiers)
	if defaults["small"] != 10 || defaults["large"] != 4 {
		t.Errorf("unexpected tier defaults: %v", defaults)
	}
}

func TestLoadTiersMissingFile(t *testing.T) {
	if _, err := LoadTiers(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateTiers(t *testing.T) {
	testCases := []struct {
		name  string
		tiers []TierSpec
	}{
		{name: "empty", tiers: nil},
		{name: "empty id", tiers: []TierSpec{{LabelMatchers: [][]string{{"a"}}, MaxConcurrentRunners: 1}}},
		{name: "duplicate id", tiers: []TierSpec{
			{ID: "small", LabelMatchers: [][]string{{"a"}}, MaxConcurrentRunners: 1},
			{ID: "small", LabelMatchers: [][]string{{"b"}}, MaxConcurrentRunners: 1},
		}},
		{name: "no matchers", tiers: []TierSpec{{ID: "small", MaxConcurrentRunners: 1}}},
		{name: "zero limit", tiers: []TierSpec{{ID: "small", LabelMatchers: [][]string{{"a"}}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateTiers(tc.tiers); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
