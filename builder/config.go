// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// config.go: internal configuration shared by all constructors.

package builder

import (
	"math/rand"
)

// builderConfig holds the knobs a Constructor may read.
type builderConfig struct {
	// idFn maps a stop index to its ID and display name.
	idFn IDFn

	// rng drives stochastic constructors and metric functions; may be nil.
	rng *rand.Rand

	// metricFn draws distance/time/cost for each new connection.
	metricFn MetricFn

	// category tags every stop created by this build.
	category string

	// oneWay disables the reverse connection normally added per link.
	oneWay bool
}

// newBuilderConfig applies opts over the defaults: decimal IDs, no RNG,
// unit metrics, blank category, two-way links.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		metricFn: DefaultMetricFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
