// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// errors.go: sentinel errors. Constructors wrap them with method context
// ("Line: n=1 < min=2: ...") so callers can match with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil graph/constructor or a failed
// network mutation.
var ErrConstructFailed = errors.New("builder: construction failed")
