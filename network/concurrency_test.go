// SPDX-License-Identifier: MIT
package network_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transit/network"
)

// Snapshots taken while edges and stops are being modified must carry a
// consistent copy of the labels. Run with -race.
func TestSnapshot_ConcurrentWithModify(t *testing.T) {
	g, n := diamond(t)
	e, _ := g.EdgeByID("AB")
	first, zero := "AB-0", 0.0
	require.NoError(t, g.ModifyEdge(e, network.EdgeChange{Name: &first, Distance: &zero, Time: &zero}))

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			name := fmt.Sprintf("AB-%d", i)
			d := float64(i)
			tag := fmt.Sprintf("line-%d", i%3)
			assert.NoError(t, g.ModifyEdge(e, network.EdgeChange{Name: &name, Distance: &d, Time: &d}))
			assert.NoError(t, g.ModifyNode(n["A"], network.NodeChange{Name: &name, Category: &tag}))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			v := g.BaseSnapshot()
			for _, a := range v.Arcs() {
				if a.ID != "AB" {
					continue
				}
				// Name and Distance were written together under one lock.
				assert.Equal(t, fmt.Sprintf("AB-%d", int(a.Distance)), a.Name)
				assert.Equal(t, a.Distance, a.BaseTime)
				_ = v.Stop(a.From).Name
			}
		}
	}()
	wg.Wait()

	s, ok := g.StopOf(n["A"])
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("AB-%d", rounds-1), s.Name)
}
