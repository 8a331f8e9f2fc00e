// SPDX-License-Identifier: MIT
// Package bellmanford: sentinel errors and options.

package bellmanford

import (
	"errors"
	"math"
)

// Sentinel errors.
var (
	// ErrNilView indicates that a nil *network.View was passed.
	ErrNilView = errors.New("bellmanford: view is nil")

	// ErrVertexNotFound indicates a source or target index outside the view.
	ErrVertexNotFound = errors.New("bellmanford: vertex not found in view")

	// ErrUnsupportedCriterion indicates a criterion that is not a plain
	// per-edge metric; use MinTransfers for transfers.
	ErrUnsupportedCriterion = errors.New("bellmanford: criterion is not a per-edge metric")

	// ErrNegativeCycle is fatal: a negative-weight cycle is reachable from
	// the source. Metrics are non-negative by construction, so this means
	// the input data was corrupted upstream.
	ErrNegativeCycle = errors.New("bellmanford: negative weight cycle detected")

	// ErrBadPenalty indicates a non-positive transfer penalty.
	ErrBadPenalty = errors.New("bellmanford: transfer penalty must be positive")
)

// TransferPenalty is the default weight of one line change in MinTransfers.
// It must dominate any plausible sum of distances along a route so that
// transfers are minimized first and distance second.
const TransferPenalty = 1_000_000

// Options configures MinTransfers.
type Options struct {
	// Penalty is the weight added per line change.
	Penalty float64
}

// Option represents a functional option.
type Option func(*Options)

// WithTransferPenalty overrides TransferPenalty. Panics on a non-positive
// or NaN value.
func WithTransferPenalty(p float64) Option {
	if !(p > 0) || math.IsInf(p, 1) {
		panic(ErrBadPenalty.Error())
	}
	return func(o *Options) {
		o.Penalty = p
	}
}

// DefaultOptions returns Options with Penalty = TransferPenalty.
func DefaultOptions() Options {
	return Options{Penalty: TransferPenalty}
}
