// Package bfs: FIFO traversal of a network.View.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/transit/network"
)

type queueItem struct {
	node  int
	depth int
}

type walker struct {
	v       *network.View
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS walks v from start following arcs accepted by the filter.
// Complexity: O(V + E).
func BFS(v *network.View, start int, opts ...Option) (*BFSResult, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= v.Len() {
		return nil, ErrStartVertexNotFound
	}

	n := v.Len()
	w := &walker{
		v:       v,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// Reachable returns the indices reachable from start over enabled arcs,
// start included, in visit order.
func Reachable(v *network.View, start int, opts ...Option) ([]int, error) {
	res, err := BFS(v, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

func (w *walker) enqueue(node, depth, parent int) {
	w.visited[node] = true
	w.res.Depth[node] = depth
	if parent >= 0 {
		w.res.Parent[node] = parent
	}
	w.queue = append(w.queue, queueItem{node: node, depth: depth})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for _, ai := range w.v.Out(item.node) {
			a := w.v.Arc(ai)
			if w.visited[a.To] || !w.opts.FilterArc(a) {
				continue
			}
			w.enqueue(a.To, item.depth+1, item.node)
		}
	}

	return nil
}
