package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transit/bfs"
	"github.com/katalvlaran/transit/builder"
	"github.com/katalvlaran/transit/network"
)

// line builds 0→1→2→3 (one-way) and returns the graph.
func line(t *testing.T) *network.Graph {
	t.Helper()
	g, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithOneWay()}, builder.Line(4))
	require.NoError(t, err)
	return g
}

func TestBFS_OrderAndDepth(t *testing.T) {
	g := line(t)
	res, err := bfs.BFS(g.Snapshot(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, 3, res.Depth[3])

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	back, err := bfs.Reachable(g.Snapshot(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, back)
}

func TestBFS_SkipsDisabledByDefault(t *testing.T) {
	g := line(t)
	e, ok := g.EdgeByID("1→2")
	require.True(t, ok)
	e.Apply(network.Event{Label: "closed", Closed: true})

	got, err := bfs.Reachable(g.Snapshot(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	all, err := bfs.Reachable(g.Snapshot(), 0, bfs.WithFilterArc(func(network.Arc) bool { return true }))
	require.NoError(t, err)
	assert.Len(t, all, 4)

	res, _ := bfs.BFS(g.Snapshot(), 0)
	_, err = res.PathTo(3)
	assert.Error(t, err)
}

func TestBFS_OptionsAndErrors(t *testing.T) {
	g := line(t)
	v := g.Snapshot()

	got, err := bfs.Reachable(v, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	_, err = bfs.BFS(v, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrViewNil)
	_, err = bfs.BFS(v, 9)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	stop := errors.New("stop")
	_, err = bfs.BFS(v, 0, bfs.WithOnVisit(func(node, _ int) error {
		if node == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(v, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
