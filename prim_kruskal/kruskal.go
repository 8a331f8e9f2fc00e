// File: kruskal.go
// Role: Kruskal's minimum spanning tree over a network.Projection.
// Determinism:
//   - Stable sort keeps projection order among equal weights, so the same
//     projection always yields the same tree.
// Concurrency:
//   - Pure function of its input; the projection is never mutated.

// Package prim_kruskal: Kruskal over an undirected projection.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/transit/network"
)

// Kruskal computes a minimum spanning tree of p.
//
// Steps:
//  1. Stable-sort projected edges by weight, so ties keep projection order.
//  2. Union-Find with path halving and union by rank accepts every edge
//     joining two components, stopping after N-1 acceptances.
//  3. Every node must share the representative of node 0; otherwise the
//     result is ErrDisconnected and no partial tree is returned.
//
// Zero or one node yields an empty tree with total 0.
// Complexity: O(E log E + E·α(V)) time, O(V + E) space.
func Kruskal(p *network.Projection) ([]*network.Edge, float64, error) {
	// 1. Validate input; trivial networks have an empty tree.
	if p == nil {
		return nil, 0, ErrNilProjection
	}
	if p.N <= 1 {
		return []*network.Edge{}, 0, nil
	}

	// 2. Sort a copy of the projected edges by ascending weight.
	edges := append([]network.UndirectedEdge(nil), p.Edges...)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Every node starts as its own component.
	parent := make([]int, p.N)
	rank := make([]int, p.N)
	for i := range parent {
		parent[i] = i
	}
	// find returns the component root, halving the path on the way up.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	// union attaches the shallower tree under the deeper root.
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	// 4. Accept each edge that joins two components, cheapest first.
	var (
		mst   = make([]*network.Edge, 0, p.N-1)
		total float64
	)
	for _, e := range edges {
		if find(e.U) == find(e.V) {
			continue // would close a cycle
		}
		union(e.U, e.V)
		mst = append(mst, e.Edge)
		total += e.Weight
		// N-1 edges span N nodes; the rest can only close cycles.
		if len(mst) == p.N-1 {
			break
		}
	}

	// 5. A single shared root means the tree spans the network.
	ref := find(0)
	for i := 1; i < p.N; i++ {
		if find(i) != ref {
			return nil, 0, ErrDisconnected
		}
	}

	return mst, total, nil
}
