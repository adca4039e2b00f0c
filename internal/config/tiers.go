// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TierSpec declares one capacity tier: the label-set alternatives a job
// must match to be routed to it, the match mode, and the per-tenant
// concurrency default applied when a tenant on this tier has no
// explicit override.
type TierSpec struct {
	ID string `yaml:"id"`

	// LabelMatchers is a list of alternatives; each alternative is a
	// set of labels. With ExactMatch every requested label must be
	// present in an alternative for it to match; otherwise a single
	// overlapping label is enough.
	LabelMatchers [][]string `yaml:"label_matchers"`
	ExactMatch    bool       `yaml:"exact_match"`

	MaxConcurrentRunners int    `yaml:"max_concurrent_runners"`
	LaunchTemplate       string `yaml:"launch_template"`
}

type tierFile struct {
	Tiers []TierSpec `yaml:"tiers"`
}

// LoadTiers reads and validates the tier table from a YAML file.
func LoadTiers(path string) ([]TierSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tier config: %w", err)
	}

	var f tierFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tier config: %w", err)
	}

	if err := ValidateTiers(f.Tiers); err != nil {
		return nil, err
	}

	return f.Tiers, nil
}

func ValidateTiers(tiers []TierSpec) error {
	if len(tiers) == 0 {
		return fmt.Errorf("tier config declares no tiers")
	}

	seen := make(map[string]bool, len(tiers))
	for _, t := range tiers {
		if t.ID == "" {
			return fmt.Errorf("tier with empty id")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate tier id %q", t.ID)
		}
		seen[t.ID] = true

		if len(t.LabelMatchers) == 0 {
			return fmt.Errorf("tier %q declares no label matchers", t.ID)
		}
		if t.MaxConcurrentRunners <= 0 {
			return fmt.Errorf("tier %q needs a positive max_concurrent_runners", t.ID)
		}
	}

	return nil
}

// TierDefaults maps tier id to its default per-tenant concurrency limit.
func TierDefaults(tiers []TierSpec) map[string]int {
	defaults := make(map[string]int, len(tiers))
	for _, t := range tiers {
		defaults[t.ID] = t.MaxConcurrentRunners
	}
	return defaults
}
