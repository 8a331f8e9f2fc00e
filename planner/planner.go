// SPDX-License-Identifier: MIT
// Package planner: route query dispatch.

package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/katalvlaran/transit/bellmanford"
	"github.com/katalvlaran/transit/dijkstra"
	"github.com/katalvlaran/transit/events"
	"github.com/katalvlaran/transit/floydwarshall"
	"github.com/katalvlaran/transit/network"
)

// Planner answers route queries over one graph. Queries are serialized:
// each one re-draws edge events and solves on the resulting snapshot
// while holding mu.
type Planner struct {
	mu      sync.Mutex
	graph   *network.Graph
	sim     *events.Simulator
	log     *slog.Logger
	rec     Recorder
	penalty float64
}

// New binds a planner to g.
//
// Without WithSimulator the planner draws events from a simulator seeded
// with the current time, so two default planners see different event
// sequences. Inject events.New(events.WithSeed(n)) for reproducible runs.
func New(g *network.Graph, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	p := &Planner{graph: g}
	defaults(p)
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Graph returns the underlying graph for mutation and introspection.
func (p *Planner) Graph() *network.Graph { return p.graph }

// BestRoute finds the best route from origin to destination under c.
//
// Every call first re-draws the event state of all edges, then picks a
// solver: Floyd-Warshall for Distance, Dijkstra for Time/Cost on a clean
// snapshot, Bellman-Ford when arcs are disabled or negative, and the
// transfer search for Transfers. found is false when no route exists.
func (p *Planner) BestRoute(origin, destination *network.Node, c network.Criterion) (Summary, bool, error) {
	if origin == nil || destination == nil {
		return Summary{}, false, fmt.Errorf("planner: BestRoute: %w", network.ErrNilNode)
	}
	if !c.Valid() {
		return Summary{}, false, fmt.Errorf("planner: BestRoute: criterion %d: %w", int(c), network.ErrUnknownCriterion)
	}

	// Rejected queries must not touch edge state, so membership is
	// checked before the simulator runs.
	if !p.graph.HasNode(origin) {
		return Summary{}, false, fmt.Errorf("planner: BestRoute: origin %q: %w", origin.ID, network.ErrNodeNotFound)
	}
	if !p.graph.HasNode(destination) {
		return Summary{}, false, fmt.Errorf("planner: BestRoute: destination %q: %w", destination.ID, network.ErrNodeNotFound)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	tally := p.sim.Run(p.graph)
	p.rec.EdgeEvents(tally)
	v := p.graph.Snapshot()

	// A concurrent RemoveNode may still win between the check and the
	// snapshot.
	src, ok := v.Index(origin)
	if !ok {
		return Summary{}, false, fmt.Errorf("planner: BestRoute: origin %q: %w", origin.ID, network.ErrNodeNotFound)
	}
	dst, ok := v.Index(destination)
	if !ok {
		return Summary{}, false, fmt.Errorf("planner: BestRoute: destination %q: %w", destination.ID, network.ErrNodeNotFound)
	}

	sum, found, err := p.dispatch(v, src, dst, c)
	outcome := OutcomeFound
	switch {
	case err != nil:
		outcome = OutcomeError
		p.log.Error("route query failed",
			slog.String("criterion", c.String()),
			slog.String("algorithm", sum.Algorithm),
			slog.String("origin", v.Stop(src).Name),
			slog.String("destination", v.Stop(dst).Name),
			slog.Any("error", err))
	case !found:
		outcome = OutcomeNoRoute
	}
	p.rec.RouteQuery(c.String(), sum.Algorithm, outcome, time.Since(start))
	if err != nil || !found {
		return Summary{}, false, err
	}

	return sum, true, nil
}

// BestRouteByID resolves stop identifiers and a criterion token, then
// calls BestRoute.
func (p *Planner) BestRouteByID(originID, destinationID, criterion string) (Summary, bool, error) {
	if strings.TrimSpace(originID) == "" || strings.TrimSpace(destinationID) == "" {
		return Summary{}, false, fmt.Errorf("planner: BestRouteByID: stop id: %w", network.ErrBlankName)
	}
	c, err := network.ParseCriterion(criterion)
	if err != nil {
		return Summary{}, false, err
	}
	origin, ok := p.graph.NodeByID(originID)
	if !ok {
		return Summary{}, false, fmt.Errorf("planner: origin %q: %w", originID, network.ErrNodeNotFound)
	}
	destination, ok := p.graph.NodeByID(destinationID)
	if !ok {
		return Summary{}, false, fmt.Errorf("planner: destination %q: %w", destinationID, network.ErrNodeNotFound)
	}

	return p.BestRoute(origin, destination, c)
}

// dispatch runs the solver selected for c. The returned summary always
// carries the algorithm name, even on error.
func (p *Planner) dispatch(v *network.View, src, dst int, c network.Criterion) (Summary, bool, error) {
	sum := Summary{Criterion: c, Algorithm: AlgorithmNone}
	if src == dst {
		sum.Event = summarizeEvent(nil, c)
		sum.Stops = []network.Stop{v.Stop(src)}
		return sum, true, nil
	}

	var (
		path      network.Path
		found     bool
		transfers int
		err       error
	)
	switch c {
	case network.Distance:
		sum.Algorithm = AlgorithmFloydWarshall
		var res *floydwarshall.Result
		if res, err = floydwarshall.AllPairs(v, c); err == nil {
			path, found = res.Path(src, dst)
		}
	case network.Time, network.Cost:
		if v.HasDisabled() || v.HasNegative(c) {
			sum.Algorithm = AlgorithmBellmanFord
			path, found, err = bellmanford.ShortestPath(v, src, dst, c)
		} else {
			sum.Algorithm = AlgorithmDijkstra
			path, found, err = dijkstra.ShortestPath(v, src, dst, c)
		}
	case network.Transfers:
		sum.Algorithm = AlgorithmTransfers
		path, transfers, found, err = bellmanford.MinTransfers(v, src, dst, bellmanford.WithTransferPenalty(p.penalty))
	}
	p.log.Debug("route dispatch",
		slog.String("criterion", c.String()),
		slog.String("algorithm", sum.Algorithm),
		slog.Int("stops", v.Len()),
		slog.Int("arcs", len(v.Arcs())),
		slog.Bool("found", found))
	if err != nil {
		return sum, false, err
	}
	if !found {
		return sum, false, nil
	}

	sum.Path = path
	sum.Stops = stopsAlong(v, path)
	sum.Distance, sum.Time, sum.Cost = path.Totals()
	sum.Event = summarizeEvent(path, c)
	if c == network.Transfers {
		sum.Transfers = transfers
		sum.Weight = float64(transfers)
	} else {
		sum.Transfers = network.CountTransfers(path)
		sum.Weight = path.Weight(c)
	}

	return sum, true, nil
}

// stopsAlong lists the frozen stops visited by path, origin first.
func stopsAlong(v *network.View, path network.Path) []network.Stop {
	if len(path) == 0 {
		return nil
	}
	out := make([]network.Stop, 0, len(path)+1)
	out = append(out, v.Stop(path[0].From))
	for _, a := range path {
		out = append(out, v.Stop(a.To))
	}

	return out
}

// summarizeEvent reports the first non-Normal event on path. Distance
// ignores events and reports EventNotApplicable.
func summarizeEvent(path network.Path, c network.Criterion) string {
	if c == network.Distance {
		return EventNotApplicable
	}
	for _, a := range path {
		if a.Event != network.EventNormalLabel && a.Event != "" {
			return a.Event
		}
	}

	return network.EventNormalLabel
}

// IsFatal reports whether err is a structural failure (a negative cycle)
// rather than a validation error.
func IsFatal(err error) bool {
	return errors.Is(err, bellmanford.ErrNegativeCycle) ||
		errors.Is(err, floydwarshall.ErrNegativeCycle) ||
		errors.Is(err, dijkstra.ErrNegativeWeight)
}
