// Package builder generates transit networks for tests, examples and
// benchmarks using functional options.
//
// The package offers:
//
//   - Constructors: Line, Ring, Star, Grid, Complete, RandomSparse.
//   - Entry points: BuildNetwork (fresh graph) and Extend (existing graph,
//     so lines with different categories can meet at shared stops).
//   - Options: WithSeed/WithRand (determinism), WithIDScheme and friends
//     (stop IDs), WithMetricFn/WithConstantMetrics/WithUniformMetrics
//     (connection metrics), WithCategory (line tag), WithOneWay.
//
// Guarantees:
//
//   - Re-running a constructor on the same graph adds nothing: stops are
//     matched by ID and connections by "from→to" ID.
//   - Option constructors panic on meaningless input; constructors return
//     errors wrapping ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource or ErrConstructFailed.
//
// Example:
//
//	g, err := builder.BuildNetwork(
//	    []builder.BuilderOption{builder.WithCategory("metro"), builder.WithSymbNumb("M")},
//	    builder.Line(5),
//	)
package builder
