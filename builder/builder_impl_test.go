// Package builder_test contains functional tests for the Constructors:
// stop and connection counts, idempotence, categories and error paths.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transit/builder"
	"github.com/katalvlaran/transit/network"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []builder.BuilderOption
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{"Line(4)", nil, builder.Line(4), 4, 6},
		{"Line(4) one-way", []builder.BuilderOption{builder.WithOneWay()}, builder.Line(4), 4, 3},
		{"Ring(5)", nil, builder.Ring(5), 5, 10},
		{"Star(4)", nil, builder.Star(4), 4, 6},
		{"Grid(2,3)", nil, builder.Grid(2, 3), 6, 14},
		{"Complete(4)", nil, builder.Complete(4), 4, 12},
		{"RandomSparse(5,1)", nil, builder.RandomSparse(5, 1), 5, 20},
		{"RandomSparse(5,0)", nil, builder.RandomSparse(5, 0), 5, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildNetwork(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())

			// Re-running adds nothing.
			require.NoError(t, builder.Extend(g, tc.opts, tc.ctor))
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ctor builder.Constructor
		want error
	}{
		{builder.Line(1), builder.ErrTooFewVertices},
		{builder.Ring(2), builder.ErrTooFewVertices},
		{builder.Star(1), builder.ErrTooFewVertices},
		{builder.Grid(0, 3), builder.ErrTooFewVertices},
		{builder.Complete(0), builder.ErrTooFewVertices},
		{builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildNetwork(nil, tc.ctor)
		assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
	}
	assert.ErrorIs(t, builder.Extend(nil, nil, builder.Line(2)), builder.ErrConstructFailed)
}

func TestBuilders_SharedTransferStop(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithCategory("red"), builder.WithSymbNumb("R")},
		builder.Line(3),
	)
	require.NoError(t, err)
	// The blue line starts at R2, the red terminus.
	blueIDs := func(i int) string {
		if i == 0 {
			return "R2"
		}
		return "B" + string(rune('0'+i))
	}
	require.NoError(t, builder.Extend(g,
		[]builder.BuilderOption{builder.WithCategory("blue"), builder.WithIDScheme(blueIDs)},
		builder.Line(3),
	))

	assert.Equal(t, 5, g.NodeCount())
	r2, ok := g.NodeByID("R2")
	require.True(t, ok)
	assert.Equal(t, "red", r2.Category)
	b1, _ := g.NodeByID("B1")
	assert.Equal(t, "blue", b1.Category)

	out, err := g.Outgoing(b1)
	require.NoError(t, err)
	lines := map[string]bool{}
	for _, e := range out {
		lines[network.LineOf(e)] = true
	}
	assert.Equal(t, map[string]bool{"blue": true}, lines)
}

func TestBuilders_SeededRandomIsDeterministic(t *testing.T) {
	t.Parallel()

	build := func() []string {
		g, err := builder.BuildNetwork(
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformMetrics(1, 9)},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		var ids []string
		for _, e := range g.Edges() {
			ids = append(ids, e.ID)
		}
		return ids
	}
	assert.Equal(t, build(), build())
}
