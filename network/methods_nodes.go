// SPDX-License-Identifier: MIT
// Package network: node lifecycle and node-level introspection.

package network

import (
	"fmt"
	"strings"
)

// NodeChange lists optional node updates for ModifyNode. Nil fields are
// left untouched.
type NodeChange struct {
	Name     *string
	Category *string
}

// AddNode registers n. Registering an already present node is a no-op.
// Returns ErrNilNode for nil and ErrDuplicateID when a different node
// already uses n.ID.
// Complexity: O(1).
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(n)
}

// addNodeLocked registers n; caller holds the write lock.
func (g *Graph) addNodeLocked(n *Node) error {
	if _, ok := g.out[n]; ok {
		return nil
	}
	if other, ok := g.nodesByID[n.ID]; ok && other != n {
		return fmt.Errorf("network: AddNode %q: %w", n.ID, ErrDuplicateID)
	}
	g.out[n] = nil
	g.nodes = append(g.nodes, n)
	g.nodesByID[n.ID] = n

	return nil
}

// checkNodeLocked reports whether addNodeLocked(n) would succeed without
// registering anything; caller holds the lock.
func (g *Graph) checkNodeLocked(n *Node) error {
	if _, ok := g.out[n]; ok {
		return nil
	}
	if other, ok := g.nodesByID[n.ID]; ok && other != n {
		return fmt.Errorf("network: AddNode %q: %w", n.ID, ErrDuplicateID)
	}

	return nil
}

// StopOf returns the current labels of n under the read lock. ok is false
// when n is nil or not registered.
func (g *Graph) StopOf(n *Node) (Stop, bool) {
	if n == nil {
		return Stop{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.out[n]; !ok {
		return Stop{}, false
	}

	return stopOf(n), true
}

// HasNode reports whether n is registered.
func (g *Graph) HasNode(n *Node) bool {
	if n == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[n]

	return ok
}

// ModifyNode renames or re-tags n. A blank new name returns ErrBlankName
// and leaves n unchanged.
func (g *Graph) ModifyNode(n *Node, ch NodeChange) error {
	if n == nil {
		return ErrNilNode
	}
	if ch.Name != nil && strings.TrimSpace(*ch.Name) == "" {
		return ErrBlankName
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.out[n]; !ok {
		return ErrNodeNotFound
	}
	if ch.Name != nil {
		n.Name = *ch.Name
	}
	if ch.Category != nil {
		n.Category = *ch.Category
	}

	return nil
}

// RemoveNode deletes n together with every edge touching it.
//
// Incoming edges are removed first, then outgoing ones. Both passes walk a
// snapshot because removal mutates the lists being iterated.
// Complexity: O(deg(n)·d) where d is the typical list length.
func (g *Graph) RemoveNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.out[n]; !ok {
		return ErrNodeNotFound
	}

	incoming := append([]*Edge(nil), n.incoming...)
	for _, e := range incoming {
		if err := g.removeEdgeLocked(e); err != nil {
			return fmt.Errorf("network: RemoveNode %q: %w", n.Name, err)
		}
	}
	outgoing := append([]*Edge(nil), g.out[n]...)
	for _, e := range outgoing {
		if err := g.removeEdgeLocked(e); err != nil {
			return fmt.Errorf("network: RemoveNode %q: %w", n.Name, err)
		}
	}

	delete(g.out, n)
	delete(g.nodesByID, n.ID)
	for i, m := range g.nodes {
		if m == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}

	return nil
}

// Nodes returns all stops in registration order.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]*Node(nil), g.nodes...)
}

// NodeByID looks a stop up by identifier.
func (g *Graph) NodeByID(id string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodesByID[id]

	return n, ok
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Outgoing returns a copy of the edges leaving n.
func (g *Graph) Outgoing(n *Node) ([]*Edge, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.out[n]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return append([]*Edge(nil), out...), nil
}

// Incoming returns a copy of the edges ending at n.
func (g *Graph) Incoming(n *Node) ([]*Edge, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.out[n]; !ok {
		return nil, ErrNodeNotFound
	}

	return append([]*Edge(nil), n.incoming...), nil
}
