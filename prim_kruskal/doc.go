// Package prim_kruskal computes minimum spanning trees of a transit
// network's undirected projection (see network.Project): Prim's algorithm
// and Kruskal's algorithm.
//
// What & Why
//
//   - The projection collapses every pair of stops joined in either
//     direction into one undirected edge carrying the cheaper weight. A
//     minimum spanning tree of it is the cheapest set of links that keeps
//     every stop connected, which answers network-design questions such
//     as "which connections must never be cut".
//
// Algorithms Provided
//
//   - Kruskal(p *network.Projection) ([]*network.Edge, float64, error)
//
//   - Strategy: stable sort by weight, then Union-Find (union by rank,
//     path halving). After the pass every node must share node 0's
//     representative.
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) space.
//
//   - Prim(p *network.Projection, root int) ([]*network.Edge, float64, error)
//
//   - Strategy: grow one tree from root, always taking the cheapest
//     frontier edge from a min-heap.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Both return the original directed edges that won their pair, and the
// total projected weight. On ties the accepted edge sets may differ; the
// totals never do.
//
// Error Conditions
//
//   - ErrNilProjection  – p is nil.
//   - ErrRootOutOfRange – Prim root outside [0, N).
//   - ErrDisconnected   – no spanning tree exists; no partial tree is returned.
//   - ErrUnknownMethod  – Compute/ParseMethod got something other than prim or kruskal.
//
// Zero or one node is a trivially spanned network: empty tree, total 0.
package prim_kruskal
