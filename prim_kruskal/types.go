// Package prim_kruskal defines errors, method names and options for the
// spanning-tree solvers.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/transit/network"
)

// ErrNilProjection indicates that a nil *network.Projection was passed.
var ErrNilProjection = errors.New("prim_kruskal: projection is nil")

// ErrRootOutOfRange indicates a Prim root outside [0, N).
var ErrRootOutOfRange = errors.New("prim_kruskal: root out of range")

// ErrDisconnected indicates that no spanning tree exists. Callers that treat
// disconnection as an expected outcome should test for it with errors.Is.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates a method other than prim or kruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// ParseMethod normalizes a case-insensitive method token.
func ParseMethod(s string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case MethodPrim, MethodKruskal:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// MSTOptions configures Compute.
//
//	Method: MethodPrim or MethodKruskal.
//	Root:   start node index for Prim; ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   int
}

// Option is a functional option for MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the Prim start node.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns Kruskal with root 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute dispatches to Kruskal or Prim.
func Compute(p *network.Projection, opts MSTOptions) ([]*network.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(p)
	case MethodPrim:
		return Prim(p, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
