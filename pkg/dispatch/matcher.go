// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"sort"
	"strings"

	"github.com/fleetforge/runner-control/internal/config"
)

// sortTiers orders candidate tiers so exact-match tiers are tried
// before broader catch-all tiers. The order within each group is the
// configured one.
func sortTiers(tiers []config.TierSpec) []config.TierSpec {
	sorted := make([]config.TierSpec, len(tiers))
	copy(sorted, tiers)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExactMatch && !sorted[j].ExactMatch
	})

	return sorted
}

// matchTier returns the first tier in precedence order that matches
// the requested labels.
func matchTier(tiers []config.TierSpec, labels []string) (config.TierSpec, bool) {
	for _, tier := range tiers {
		if tierMatches(tier, labels) {
			return tier, true
		}
	}
	return config.TierSpec{}, false
}

// tierMatches evaluates one tier's label-set alternatives against the
// requested labels, case-insensitively. With ExactMatch an alternative
// matches when every requested label is present in it; otherwise one
// overlapping label is enough.
//
// A job requesting zero labels inverts the outcome: such jobs match
// only the tiers whose computed result is false. This keeps untagged
// jobs off every exact-label tier and routes them to the catch-all
// ones.
func tierMatches(tier config.TierSpec, labels []string) bool {
	requested := make([]string, len(labels))
	for i, l := range labels {
		requested[i] = strings.ToLower(l)
	}

	matched := false
	for _, alt := range tier.LabelMatchers {
		set := make(map[string]bool, len(alt))
		for _, l := range alt {
			set[strings.ToLower(l)] = true
		}

		if tier.ExactMatch {
			ok := true
			for _, l := range requested {
				if !set[l] {
					ok = false
					break
				}
			}
			if ok {
				matched = true
				break
			}
		} else {
			for _, l := range requested {
				if set[l] {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
	}

	if len(requested) == 0 {
		return !matched
	}
	return matched
}
