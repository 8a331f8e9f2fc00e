// File: prim.go
// Role: Prim's minimum spanning tree over a network.Projection, grown from
//       a root node with a frontier min-heap.
// Determinism:
//   - Frontier edges are pushed in Adj order; equal weights pop in heap
//     order, so the chosen edges may differ from Kruskal while the total
//     does not.
// Concurrency:
//   - Pure function of its input; the projection is never mutated.

// Package prim_kruskal: Prim over an undirected projection.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/transit/network"
)

// Prim grows a minimum spanning tree of p from root.
//
// A min-heap holds frontier edges (positions in p.Edges). Popping an edge
// whose far end is already visited discards it; otherwise the node joins
// the tree and its incident edges are pushed. If the heap drains before
// every node is visited the result is ErrDisconnected.
//
// Zero or one node yields an empty tree with total 0.
// Complexity: O(E log E) time, O(V + E) space.
func Prim(p *network.Projection, root int) ([]*network.Edge, float64, error) {
	// 1. Validate input; trivial networks have an empty tree.
	if p == nil {
		return nil, 0, ErrNilProjection
	}
	if p.N <= 1 {
		return []*network.Edge{}, 0, nil
	}
	if root < 0 || root >= p.N {
		return nil, 0, ErrRootOutOfRange
	}

	// 2. Prepare the tree, the visited set and an empty frontier.
	visited := make([]bool, p.N)
	mst := make([]*network.Edge, 0, p.N-1)
	var total float64

	pq := &edgePQ{proj: p}
	heap.Init(pq)

	// visit adds u to the tree and pushes every edge leading out of it.
	visit := func(u int) {
		visited[u] = true
		for _, ei := range p.Adj[u] {
			if !visited[other(p.Edges[ei], u)] {
				heap.Push(pq, frontier{edge: ei, from: u})
			}
		}
	}
	// 3. Seed the frontier from root.
	visit(root)

	// 4. Grow the tree until it spans N nodes or the frontier drains.
	for pq.Len() > 0 && len(mst) < p.N-1 {
		// a. Cheapest frontier edge first.
		f := heap.Pop(pq).(frontier)
		e := p.Edges[f.edge]
		v := other(e, f.from)
		// b. Both ends already in the tree: the edge would close a cycle.
		if visited[v] {
			continue
		}
		// c. Take the edge and expand from its far end.
		mst = append(mst, e.Edge)
		total += e.Weight
		visit(v)
	}

	// 5. A drained frontier with nodes left over means disconnected.
	if len(mst) < p.N-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// other returns the endpoint of e opposite to u.
func other(e network.UndirectedEdge, u int) int {
	if e.U == u {
		return e.V
	}
	return e.U
}

// frontier is an edge position entered from node from.
type frontier struct {
	edge int
	from int
}

// edgePQ is a min-heap of frontier entries ordered by edge weight.
type edgePQ struct {
	proj  *network.Projection
	items []frontier
}

func (pq edgePQ) Len() int { return len(pq.items) }

func (pq edgePQ) Less(i, j int) bool {
	return pq.proj.Edges[pq.items[i].edge].Weight < pq.proj.Edges[pq.items[j].edge].Weight
}

func (pq edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(frontier)) }

func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
