// Package bfs: options, results and sentinel errors.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/transit/network"
)

var (
	// ErrStartVertexNotFound indicates a start index outside the view.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrViewNil indicates a nil view.
	ErrViewNil = errors.New("bfs: view is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a traversal.
type Option func(*BFSOptions)

// BFSOptions holds traversal hooks and limits.
type BFSOptions struct {
	// Ctx cancels long traversals between dequeues.
	Ctx context.Context

	// OnVisit runs for every dequeued node; an error aborts the walk.
	OnVisit func(node, depth int) error

	// MaxDepth stops expansion beyond this depth; 0 means unlimited.
	MaxDepth int

	// FilterArc decides whether an arc may be followed. The default
	// follows enabled arcs only.
	FilterArc func(a network.Arc) bool

	err error
}

// DefaultOptions follows enabled arcs with no depth limit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
		FilterArc: func(a network.Arc) bool { return a.Enabled },
	}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a visit hook; nil is ignored.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal depth. Negative values are reported
// as ErrOptionViolation when the traversal starts.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterArc replaces the arc filter; nil is ignored.
func WithFilterArc(fn func(a network.Arc) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterArc = fn
		}
	}
}

// BFSResult records visit order, depth and parent of each reached node.
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether node was visited.
func (r *BFSResult) Reached(node int) bool {
	_, ok := r.Depth[node]
	return ok
}

// PathTo returns the node indices from the start to dest.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
