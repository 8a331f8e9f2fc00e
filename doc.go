// Package transit is a route planner for small transit networks whose
// links change state at query time.
//
// 🚏 What is transit?
//
//	A directed multigraph of stops and connections with three metrics per
//	connection (distance, time, cost) and a derived fourth one (line
//	transfers). Before every query a simulator re-draws disruptions on
//	each link; the planner then picks a solver for the criterion:
//		• Distance   → Floyd-Warshall (distance ignores disruptions)
//		• Time, Cost → Dijkstra, or Bellman-Ford when links are closed
//		• Transfers  → Bellman-Ford over (stop, line) states
//	Prim and Kruskal answer network-design questions over an undirected
//	projection of the same graph.
//
// Under the hood:
//
//	network/       Node, Edge, Graph, Criterion, immutable View, projection
//	events/        disruption simulator with an injectable random source
//	dijkstra/      single-target Dijkstra over a View
//	bellmanford/   Bellman-Ford and the transfer-minimizing variant
//	floydwarshall/ all-pairs distances with path lists
//	prim_kruskal/  minimum spanning trees
//	bfs/           reachability
//	builder/       deterministic network generators
//	planner/       query dispatch, summaries, spanning trees
//	store/         YAML and PostgreSQL persistence
//	metrics/       Prometheus series
//	config/        daemon settings
//	httpapi/       JSON over HTTP
//	cmd/transitd/  the daemon
//
// Quick ASCII example:
//
//	    A──10──B
//	    │      │1
//	    20     C──1──D
//	    └──────┘
//
//	bestRoute(A, D, distance) = A→B→C→D, total 12.
package transit
