// Package planner is the query entry point of the transit engine.
//
// A Planner owns a *network.Graph reference, an event simulator and a
// query lock. Each BestRoute call runs one uninterrupted cycle:
//
//  1. re-draw the event state of every edge (events.Simulator.Run);
//  2. freeze it into a network.View;
//  3. select a solver by criterion and view health;
//  4. fold the path into an immutable Summary.
//
// Solver selection:
//
//	Distance   → floydwarshall.AllPairs (distance never changes under events)
//	Time, Cost → dijkstra, or bellmanford when the view has disabled or
//	             negative arcs
//	Transfers  → bellmanford.MinTransfers
//
// "No route" and "disconnected" are reported through the found/ok
// results. Errors are either validation failures (network.ErrNilNode,
// network.ErrNodeNotFound, network.ErrUnknownCriterion,
// ErrInvalidMSTRequest) or structural ones (negative cycles, see IsFatal).
//
// MinimumSpanningTree and Reachable read the base state of the network and
// never draw events.
package planner
