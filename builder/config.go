// SPDX-License-Identifier: MIT
// Package: poset/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • rng  = nil (stochastic constructors refuse to run)

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn IDFn       // index -> element name
	rng  *rand.Rand // nil means no randomness
}

// newBuilderConfig applies opts in order over the defaults (later wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
