// Package events simulates service disruptions on a transit network.
//
// Before every route query each edge is reset to its baseline and then
// assigned one outcome from a cumulative threshold table, using a uniform
// draw in [1,100]:
//
//	draw     outcome                          time   cost
//	1–5      Severe accident (closed)         -      -     (edge disabled)
//	6–15     Minor accident (severe delay)    ×2.0   ×1.3
//	16–30    Delay                            ×1.5   ×1.2
//	31–40    Rain                             ×1.2   ×1.1
//	41–100   Normal                           ×1.0   ×1.0
//
// Distance is never touched.
//
// Determinism:
//   - The random source is injected (WithSeed, WithRand, WithSource).
//     seed==0 maps to a fixed default seed, never to wall-clock time.
//   - Edges are visited in Graph.Edges order, so one seed always yields the
//     same network state.
//
// Concurrency:
//   - A Simulator is not safe for concurrent use; its source is not
//     goroutine-safe. The planner serializes Run under its own mutex.
//
// Core Methods:
//
//	New(opts ...Option) *Simulator
//	(*Simulator).Run(g *network.Graph) Tally  // O(E)
//	(*Simulator).Draw() int                   // O(1)
//	Classify(draw int) network.Event           // O(len(table)), pure
package events
