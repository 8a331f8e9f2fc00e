// Package bfs implements breadth-first traversal over a network.View.
//
// The planner uses it to answer "which stops can I reach from here"
// questions. By default only enabled arcs are followed, so the result
// reflects closures in the view it was given.
//
// Features:
//
//   - Context cancellation checked between dequeues.
//   - OnVisit hook; returning an error aborts the walk.
//   - MaxDepth limit (0 = unlimited).
//   - Custom arc filter (WithFilterArc), e.g. to ignore closures.
//
// Complexity: O(V + E) time, O(V) space.
//
// Errors:
//
//	ErrViewNil, ErrStartVertexNotFound, ErrOptionViolation, ctx.Err().
package bfs
