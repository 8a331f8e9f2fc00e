// SPDX-License-Identifier: MIT
package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transit/network"
)

// mustNode creates a node or fails the test.
func mustNode(t testing.TB, name, category string) *network.Node {
	t.Helper()
	n, err := network.NewNode(name, category, network.WithNodeID(name))
	require.NoError(t, err)

	return n
}

// mustEdge adds an edge or fails the test.
func mustEdge(t testing.TB, g *network.Graph, name string, from, to *network.Node, d, tm, c float64) *network.Edge {
	t.Helper()
	e, err := g.AddEdge(name, from, to, d, tm, c, network.WithEdgeID(name))
	require.NoError(t, err)

	return e
}

// diamond builds A→B(4) A→C(2) C→B(1) B→D(5) C→D(8).
func diamond(t testing.TB) (*network.Graph, map[string]*network.Node) {
	t.Helper()
	g := network.NewGraph()
	nodes := map[string]*network.Node{}
	for _, name := range []string{"A", "B", "C", "D"} {
		nodes[name] = mustNode(t, name, "metro")
		require.NoError(t, g.AddNode(nodes[name]))
	}
	mustEdge(t, g, "AB", nodes["A"], nodes["B"], 4, 4, 4)
	mustEdge(t, g, "AC", nodes["A"], nodes["C"], 2, 2, 2)
	mustEdge(t, g, "CB", nodes["C"], nodes["B"], 1, 1, 1)
	mustEdge(t, g, "BD", nodes["B"], nodes["D"], 5, 5, 5)
	mustEdge(t, g, "CD", nodes["C"], nodes["D"], 8, 8, 8)

	return g, nodes
}
