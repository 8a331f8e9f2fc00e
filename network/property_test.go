// SPDX-License-Identifier: MIT
package network_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/transit/network"
)

// buildRandom wires n nodes with edges taken from pairs (i%n → j%n).
func buildRandom(n int, pairs []int) (*network.Graph, []*network.Node) {
	g := network.NewGraph()
	nodes := make([]*network.Node, n)
	for i := range nodes {
		nodes[i], _ = network.NewNode(fmt.Sprintf("S%d", i), fmt.Sprintf("line%d", i%3))
		_ = g.AddNode(nodes[i])
	}
	for k := 0; k+1 < len(pairs); k += 2 {
		from, to := nodes[pairs[k]%n], nodes[pairs[k+1]%n]
		_, _ = g.AddEdge("e", from, to, float64(pairs[k]%7), 1, 1)
	}

	return g, nodes
}

func TestProperties_Graph(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)

	properties.Property("removing a node leaves no edge touching it", prop.ForAll(
		func(n int, pairs []int, victim int) bool {
			g, nodes := buildRandom(n, pairs)
			dead := nodes[victim%n]
			if err := g.RemoveNode(dead); err != nil {
				return false
			}
			for _, e := range g.Edges() {
				if e.From() == dead || e.To() == dead {
					return false
				}
			}
			for _, m := range g.Nodes() {
				in, _ := g.Incoming(m)
				for _, e := range in {
					if e.To() != m || e.From() == dead {
						return false
					}
				}
			}
			return g.NodeCount() == n-1
		},
		gen.IntRange(1, 12),
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.IntRange(0, 100),
	))

	properties.Property("reset is idempotent after any event", prop.ForAll(
		func(factor float64, closed bool) bool {
			g, _ := buildRandom(2, []int{0, 1})
			ev := network.Event{Label: "x", Closed: closed, TimeFactor: factor, CostFactor: factor}
			g.ForEachEdge(func(e *network.Edge) { e.Apply(ev) })
			g.ResetEvents()
			once := g.Snapshot().Arcs()
			g.ResetEvents()
			twice := g.Snapshot().Arcs()
			for i := range once {
				if once[i] != twice[i] || !twice[i].Enabled || twice[i].Time != twice[i].Edge.BaseTime {
					return false
				}
			}
			return true
		},
		gen.Float64Range(1, 3),
		gen.Bool(),
	))

	properties.Property("edges on k distinct lines have k-1 transfers", prop.ForAll(
		func(k int) bool {
			path := make(network.Path, k)
			for i := range path {
				path[i].Line = fmt.Sprintf("l%d", i)
			}
			return network.CountTransfers(path) == k-1
		},
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}
