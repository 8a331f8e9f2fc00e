// Package dijkstra provides a single-target implementation of Dijkstra's
// shortest-path algorithm over a network.View.
//
// Overview:
//
//   - ShortestPath expands the next-closest node from a min-heap and stops
//     once the target is finalized.
//   - Disabled arcs are invisible to the search; an unreachable target is
//     reported through found == false, never through an error.
//   - The weight of an arc is its current distance, time or cost as frozen
//     in the view, so inflated event values are honoured.
//
// When to use:
//
//   - Time or cost queries on a network whose arcs are all enabled and
//     non-negative. The planner routes everything else to bellmanford.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors:
//
//	ErrNilView, ErrVertexNotFound, ErrNegativeWeight,
//	ErrUnsupportedCriterion, ErrBadMaxWeight (panic from WithMaxWeight).
//
// Example:
//
//	v := g.Snapshot()
//	src, _ := v.Index(a)
//	dst, _ := v.Index(d)
//	path, found, err := dijkstra.ShortestPath(v, src, dst, network.Time)
package dijkstra
