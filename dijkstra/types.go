// Package dijkstra defines errors and configuration options for the
// single-target Dijkstra search over a network.View.
//
// Options:
//
//	– MaxWeight: optional cap on accumulated weight; nodes beyond it are
//	  treated as unreachable.
//
// Errors (sentinel):
//
//	– ErrNilView              if the view pointer is nil.
//	– ErrVertexNotFound       if source or target is outside the view.
//	– ErrNegativeWeight       if an enabled arc has a negative weight.
//	– ErrUnsupportedCriterion if the criterion is not distance, time or cost.
//	– ErrBadMaxWeight         if MaxWeight < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilView indicates that a nil *network.View was passed.
	ErrNilView = errors.New("dijkstra: view is nil")

	// ErrVertexNotFound indicates a source or target index outside the view.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in view")

	// ErrNegativeWeight indicates that a negative arc weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnsupportedCriterion indicates a criterion that is not a plain
	// per-edge metric (transfers needs the state-expanded search).
	ErrUnsupportedCriterion = errors.New("dijkstra: criterion is not a per-edge metric")

	// ErrBadMaxWeight indicates a negative MaxWeight.
	ErrBadMaxWeight = errors.New("dijkstra: MaxWeight must be non-negative")
)

// Options configures a search.
//
// MaxWeight – nodes whose best weight would exceed this value are not
// explored. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxWeight float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxWeight caps the accumulated weight. Panics on a negative value.
func WithMaxWeight(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxWeight.Error())
	}
	return func(o *Options) {
		o.MaxWeight = max
	}
}

// DefaultOptions returns an Options struct with no weight cap.
func DefaultOptions() Options {
	return Options{MaxWeight: math.Inf(1)}
}
