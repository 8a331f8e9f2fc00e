// Package bellmanford implements two relaxation-based route searches over a
// network.View.
//
// ShortestPath is the textbook algorithm restricted to one target. The
// planner uses it for time and cost queries whenever the view contains a
// disabled arc or a negative weight. A reachable negative cycle aborts the
// query with ErrNegativeCycle; callers must treat it as fatal rather than
// as "no route".
//
// MinTransfers answers the transfers criterion. It expands each node into
// one state per line that can arrive there and runs the same relaxation
// loop, so that the result minimizes line changes first and distance
// second (see TransferPenalty).
//
// Core Methods:
//
//	ShortestPath(v, source, target, c) (network.Path, bool, error)       // O(V·E)
//	MinTransfers(v, source, target, ...Option) (network.Path, int, bool, error)
//
// Errors:
//
//	ErrNilView, ErrVertexNotFound, ErrUnsupportedCriterion,
//	ErrNegativeCycle (fatal), ErrBadPenalty (panic from WithTransferPenalty).
package bellmanford
