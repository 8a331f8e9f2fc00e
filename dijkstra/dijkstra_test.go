// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// input validation, disabled arcs, early exit, weight caps and event-inflated
// weights.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/transit/dijkstra"
	"github.com/katalvlaran/transit/network"
)

// fixture is a small network plus a name → view index lookup.
type fixture struct {
	g     *network.Graph
	nodes map[string]*network.Node
	edges map[string]*network.Edge
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{g: network.NewGraph(), nodes: map[string]*network.Node{}, edges: map[string]*network.Edge{}}
}

func (f *fixture) node(t *testing.T, name string) *network.Node {
	t.Helper()
	if n, ok := f.nodes[name]; ok {
		return n
	}
	n, err := network.NewNode(name, "")
	if err != nil {
		t.Fatalf("NewNode(%q): %v", name, err)
	}
	if err = f.g.AddNode(n); err != nil {
		t.Fatalf("AddNode(%q): %v", name, err)
	}
	f.nodes[name] = n
	return n
}

func (f *fixture) edge(t *testing.T, from, to string, d, tm, c float64) {
	t.Helper()
	e, err := f.g.AddEdge(from+to, f.node(t, from), f.node(t, to), d, tm, c)
	if err != nil {
		t.Fatalf("AddEdge(%s→%s): %v", from, to, err)
	}
	f.edges[from+to] = e
}

func (f *fixture) run(t *testing.T, from, to string, c network.Criterion, opts ...dijkstra.Option) (network.Path, bool, error) {
	t.Helper()
	v := f.g.Snapshot()
	s, _ := v.Index(f.nodes[from])
	d, _ := v.Index(f.nodes[to])
	return dijkstra.ShortestPath(v, s, d, c, opts...)
}

func names(p network.Path) []string {
	out := make([]string, len(p))
	for i, a := range p {
		out[i] = a.Edge.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestShortestPath_Validation(t *testing.T) {
	if _, _, err := dijkstra.ShortestPath(nil, 0, 0, network.Time); err != dijkstra.ErrNilView {
		t.Fatalf("expected ErrNilView, got %v", err)
	}
	f := newFixture(t)
	f.edge(t, "A", "B", 1, 1, 1)
	v := f.g.Snapshot()
	if _, _, err := dijkstra.ShortestPath(v, 0, 5, network.Time); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}
	if _, _, err := dijkstra.ShortestPath(v, 0, 1, network.Transfers); !errors.Is(err, dijkstra.ErrUnsupportedCriterion) {
		t.Fatalf("expected ErrUnsupportedCriterion, got %v", err)
	}
}

func TestShortestPath_NegativeWeight(t *testing.T) {
	f := newFixture(t)
	f.edge(t, "A", "B", 1, 1, 1)
	f.edges["AB"].Time = -3
	if _, _, err := f.run(t, "A", "B", network.Time); !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
	// Distance is unaffected by the corrupted time value.
	if _, found, err := f.run(t, "A", "B", network.Distance); err != nil || !found {
		t.Fatalf("distance query: found=%v err=%v", found, err)
	}
}

func TestShortestPath_PicksCheapest(t *testing.T) {
	f := newFixture(t)
	f.edge(t, "A", "B", 10, 1, 9)
	f.edge(t, "B", "C", 1, 1, 9)
	f.edge(t, "A", "C", 20, 5, 1)
	f.edge(t, "C", "D", 1, 1, 1)

	cases := []struct {
		c    network.Criterion
		want []string
		w    float64
	}{
		{network.Distance, []string{"AB", "BC", "CD"}, 12},
		{network.Time, []string{"AB", "BC", "CD"}, 3},
		{network.Cost, []string{"AC", "CD"}, 2},
	}
	for _, tc := range cases {
		p, found, err := f.run(t, "A", "D", tc.c)
		if err != nil || !found {
			t.Fatalf("%v: found=%v err=%v", tc.c, found, err)
		}
		if got := names(p); !equal(got, tc.want) {
			t.Fatalf("%v: path=%v, want %v", tc.c, got, tc.want)
		}
		if p.Weight(tc.c) != tc.w {
			t.Fatalf("%v: weight=%g, want %g", tc.c, p.Weight(tc.c), tc.w)
		}
	}
}

func TestShortestPath_SkipsDisabled(t *testing.T) {
	f := newFixture(t)
	f.edge(t, "A", "B", 1, 1, 1)
	f.edges["AB"].Apply(network.Event{Label: "closed", Closed: true})
	if _, found, err := f.run(t, "A", "B", network.Time); err != nil || found {
		t.Fatalf("expected no route, found=%v err=%v", found, err)
	}

	f.edge(t, "A", "C", 1, 1, 1)
	f.edge(t, "C", "B", 1, 1, 1)
	p, found, err := f.run(t, "A", "B", network.Time)
	if err != nil || !found || !equal(names(p), []string{"AC", "CB"}) {
		t.Fatalf("detour: path=%v found=%v err=%v", names(p), found, err)
	}
}

func TestShortestPath_UsesInflatedWeights(t *testing.T) {
	f := newFixture(t)
	f.edge(t, "A", "B", 1, 10, 1)
	f.edge(t, "A", "C", 1, 6, 1)
	f.edge(t, "C", "B", 1, 6, 1)
	f.edges["AB"].Apply(network.Event{Label: "Minor", TimeFactor: 2, CostFactor: 1})

	p, _, _ := f.run(t, "A", "B", network.Time)
	if !equal(names(p), []string{"AC", "CB"}) {
		t.Fatalf("expected detour around the delayed edge, got %v", names(p))
	}
}

func TestShortestPath_SameNodeAndMaxWeight(t *testing.T) {
	f := newFixture(t)
	f.edge(t, "A", "B", 5, 5, 5)

	p, found, err := f.run(t, "A", "A", network.Distance)
	if err != nil || !found || len(p) != 0 {
		t.Fatalf("self query: path=%v found=%v err=%v", names(p), found, err)
	}
	if _, found, _ = f.run(t, "A", "B", network.Distance, dijkstra.WithMaxWeight(4)); found {
		t.Fatalf("expected cap to hide B")
	}
	if _, found, _ = f.run(t, "B", "A", network.Distance); found {
		t.Fatalf("edges are directed; B→A must be unreachable")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("WithMaxWeight(-1) must panic")
		}
	}()
	dijkstra.WithMaxWeight(-1)
}
