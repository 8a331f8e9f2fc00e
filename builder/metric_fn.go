// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// metric_fn.go: per-connection metric generators.
//
// Contract:
//   • Generators never return negative values.
//   • A nil RNG makes stochastic generators fall back to DefaultMetrics,
//     so deterministic constructors stay deterministic.

package builder

import (
	"fmt"
	"math/rand"
)

// Metrics are the base values of one connection.
type Metrics struct {
	Distance float64
	Time     float64
	Cost     float64
}

// DefaultMetrics is used when no generator is configured.
var DefaultMetrics = Metrics{Distance: 1, Time: 1, Cost: 1}

// MetricFn draws the metrics of a new connection.
type MetricFn func(rng *rand.Rand) Metrics

// DefaultMetricFn always returns DefaultMetrics.
func DefaultMetricFn(_ *rand.Rand) Metrics {
	return DefaultMetrics
}

// ConstantMetricFn always returns m. Panics on a negative component.
func ConstantMetricFn(m Metrics) MetricFn {
	if m.Distance < 0 || m.Time < 0 || m.Cost < 0 {
		panic(fmt.Sprintf("ConstantMetricFn: metrics must be ≥ 0, got %+v", m))
	}
	return func(_ *rand.Rand) Metrics {
		return m
	}
}

// UniformMetricFn draws each metric independently from U[min,max].
// Panics unless 0 ≤ min ≤ max.
func UniformMetricFn(min, max float64) MetricFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformMetricFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) Metrics {
		if rng == nil {
			return DefaultMetrics
		}
		span := max - min
		return Metrics{
			Distance: min + rng.Float64()*span,
			Time:     min + rng.Float64()*span,
			Cost:     min + rng.Float64()*span,
		}
	}
}

// WithConstantMetrics selects ConstantMetricFn(m).
func WithConstantMetrics(m Metrics) BuilderOption {
	return WithMetricFn(ConstantMetricFn(m))
}

// WithUniformMetrics selects UniformMetricFn(min, max).
func WithUniformMetrics(min, max float64) BuilderOption {
	return WithMetricFn(UniformMetricFn(min, max))
}
