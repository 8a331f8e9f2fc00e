// File: dijkstra.go
// Role: Single-target Dijkstra over an immutable network.View.
// Determinism:
//   - Arcs are relaxed in View.Out order; equal-weight ties resolve by heap
//     order and are not part of the contract.
// Concurrency:
//   - Reads only the View, which is frozen; each call owns its runner.

// Package dijkstra implements Dijkstra's shortest-path algorithm restricted
// to a single target.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold up to E stale entries under
//     lazy decrease-key.
//
// Notes on implementation choices:
//
//   - An upfront O(E) scan rejects negative weights before any work.
//   - Disabled arcs are skipped during relaxation.
//   - The search stops as soon as the target is popped.
//   - Ties are resolved by heap order; callers must not rely on a
//     particular tie-break.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/transit/network"
)

// ShortestPath returns the minimum-weight path from source to target
// under criterion c, skipping disabled arcs.
//
// Returns:
//
//   - path:  ordered arcs; empty when source == target.
//   - found: false when target is unreachable (not an error).
//   - err:   ErrNilView, ErrVertexNotFound, ErrUnsupportedCriterion or
//     ErrNegativeWeight.
//
// Complexity: O((V + E) log V).
func ShortestPath(v *network.View, source, target int, c network.Criterion, opts ...Option) (network.Path, bool, error) {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the view, the criterion and both endpoints.
	if v == nil {
		return nil, false, ErrNilView
	}
	if !c.Metric() {
		return nil, false, fmt.Errorf("%w: %v", ErrUnsupportedCriterion, c)
	}
	if source < 0 || source >= v.Len() || target < 0 || target >= v.Len() {
		return nil, false, fmt.Errorf("%w: source=%d target=%d n=%d", ErrVertexNotFound, source, target, v.Len())
	}
	// 3) Fail fast on negative weights; disabled arcs never relax, so they
	//    are not checked.
	for _, a := range v.Arcs() {
		if a.Enabled && a.Weight(c) < 0 {
			return nil, false, fmt.Errorf("%w: edge %q weight=%g", ErrNegativeWeight, a.ID, a.Weight(c))
		}
	}

	// 4) Run the search from source until target is finalized.
	r := &runner{
		v:         v,
		c:         c,
		maxWeight: cfg.MaxWeight,
		target:    target,
		dist:      make([]float64, v.Len()),
		pred:      make([]int, v.Len()),
		visited:   make([]bool, v.Len()),
		pq:        make(nodePQ, 0, v.Len()),
	}
	r.init(source)
	r.process()

	// 5) An infinite distance means unreachable, which is not an error.
	if math.IsInf(r.dist[target], 1) {
		return nil, false, nil
	}
	// 6) Walk the predecessor arcs back from target.
	path, ok := network.TracePath(v, r.pred, source, target)

	return path, ok, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	v         *network.View
	c         network.Criterion
	maxWeight float64
	target    int
	dist      []float64 // best known weight per node
	pred      []int     // arc position used to reach each node, -1 if none
	visited   []bool    // finalized nodes
	pq        nodePQ
}

// init marks every node unreached and seeds the heap with source.
func (r *runner) init(source int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.pred[i] = -1
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops nodes in weight order until the target is finalized or the
// heap runs dry.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// a) Pop the closest tentative node.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		// b) Everything left in the heap is at least this far; stop past
		//    the cap.
		if item.dist > r.maxWeight {
			return
		}
		// c) Finalize u; the target's distance can no longer improve.
		r.visited[u] = true
		if u == r.target {
			return
		}
		// d) Offer shorter distances to u's neighbours.
		r.relax(u)
	}
}

// relax pushes an improved entry for every neighbour of u reachable over
// an enabled arc. Old entries stay in the heap (lazy decrease-key).
func (r *runner) relax(u int) {
	for _, ai := range r.v.Out(u) {
		a := r.v.Arc(ai)
		// Closed links and finalized nodes are never revisited.
		if !a.Enabled || r.visited[a.To] {
			continue
		}
		nd := r.dist[u] + a.Weight(r.c)
		// Keep strictly better distances that stay under the cap.
		if nd > r.maxWeight || nd >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = nd
		r.pred[a.To] = ai
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: nd})
	}
}

// nodeItem represents a node and its tentative weight from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries
// remain in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
