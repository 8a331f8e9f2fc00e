// Package network defines the transit graph: stops (Node), directed
// connections (Edge) and the Graph that owns them.
//
// The Graph G = (V,E) is a directed multigraph:
//
//   - Nodes are compared by pointer identity; two stops with the same name
//     are distinct entities.
//   - Every Edge sits in exactly one origin outgoing list and exactly one
//     destination incoming list. Mutations keep both indices in sync.
//   - Each Edge carries three base metrics (distance, time, cost) fixed at
//     creation or by ModifyEdge, plus a current time/cost pair, an enabled
//     flag and an event label that the event simulator rewrites per query.
//   - Distance is never inflated by events; it is a property of the link.
//
// Solvers never read live edges. A query takes a View (Snapshot or
// BaseSnapshot): an immutable copy of the per-edge state indexed by
// integer node positions. Paths are returned as ordered Arc slices.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n *Node) error                     // O(1)
//	ModifyNode(n *Node, ch NodeChange) error   // O(1)
//	RemoveNode(n *Node) error                  // O(deg(n)·d)
//
//	// Edge lifecycle
//	AddEdge(name, from, to, dist, time, cost) (*Edge, error) // O(1)
//	RemoveEdge(e *Edge) error                  // O(d)
//	ModifyEdge(e *Edge, ch EdgeChange) error   // O(d)
//
//	// Introspection
//	Nodes(), Edges(), Outgoing(n), Incoming(n), NodeByID, EdgeByID
//
//	// Query support
//	Snapshot() *View, BaseSnapshot() *View, Project(view, criterion)
//
// Line identity (LineOf) and transfer counting (CountTransfers) are pure
// functions over edges and paths.
//
// Errors:
//
//	ErrNilNode          – node pointer is nil.
//	ErrNilEdge          – edge pointer is nil.
//	ErrBlankName        – node name is empty or whitespace.
//	ErrNegativeMetric   – distance/time/cost is negative or NaN.
//	ErrNodeNotFound     – node is not registered in this graph.
//	ErrEdgeNotFound     – edge is not registered in this graph.
//	ErrDuplicateID      – a different node/edge already uses the ID.
//	ErrUnknownCriterion – criterion token or value is not recognized.
//	ErrInconsistent     – outgoing and incoming indices disagree.
//	ErrArcOutOfRange    – NewView got an arc endpoint outside the node list.
package network
