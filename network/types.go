// SPDX-License-Identifier: MIT
// Package network: core types, options and sentinel errors.

package network

import (
	"errors"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Sentinel errors for network operations.
var (
	// ErrNilNode indicates a nil *Node argument.
	ErrNilNode = errors.New("network: node is nil")

	// ErrNilEdge indicates a nil *Edge argument.
	ErrNilEdge = errors.New("network: edge is nil")

	// ErrBlankName indicates an empty or whitespace-only node name.
	ErrBlankName = errors.New("network: name is blank")

	// ErrNegativeMetric indicates a negative (or NaN) distance, time or cost.
	ErrNegativeMetric = errors.New("network: metric must be non-negative")

	// ErrNodeNotFound indicates the node is not registered in the graph.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrEdgeNotFound indicates the edge is not registered in the graph.
	ErrEdgeNotFound = errors.New("network: edge not found")

	// ErrDuplicateID indicates another node or edge already owns the ID.
	ErrDuplicateID = errors.New("network: duplicate id")

	// ErrUnknownCriterion indicates a criterion outside {distance,time,cost,transfers}.
	ErrUnknownCriterion = errors.New("network: unknown criterion")

	// ErrInconsistent indicates that an edge was present in exactly one of
	// the outgoing/incoming indices. It signals a corrupted graph.
	ErrInconsistent = errors.New("network: adjacency indices out of sync")
)

// EventNormalLabel is the event label of an undisturbed edge.
const EventNormalLabel = "Normal"

// Node is a stop of the network.
//
// Nodes are identified by pointer; Name is for display only. Category is
// the line tag used to derive line identity for transfer counting. ID never
// changes after creation; Name and Category change only through
// Graph.ModifyNode and are read concurrently via View.Stop or Graph.StopOf.
type Node struct {
	// ID is a stable identifier used by persistence and the HTTP surface.
	ID string

	// Name is the display name. Never blank.
	Name string

	// Category tags the service line (e.g. "metro", "bus 12"). May be blank.
	Category string

	// incoming holds non-owning back-references of edges ending here.
	incoming []*Edge
}

// NodeOption configures a Node at creation.
type NodeOption func(*Node)

// WithNodeID overrides the generated identifier (used by loaders).
func WithNodeID(id string) NodeOption {
	return func(n *Node) {
		if id != "" {
			n.ID = id
		}
	}
}

// NewNode creates a detached stop. Register it with Graph.AddNode or let
// AddEdge register it implicitly.
// Returns ErrBlankName if name is blank.
func NewNode(name, category string, opts ...NodeOption) (*Node, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	n := &Node{ID: uuid.NewString(), Name: name, Category: category}
	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// String returns the display name.
func (n *Node) String() string { return n.Name }

// Edge is a directed connection between two stops.
//
// Distance, BaseTime and BaseCost are the baseline metrics. Time, Cost,
// Enabled and Event describe the current state and are rewritten by Reset
// and Apply. Change metrics through Graph.ModifyEdge so that validation
// and baseline updates apply. While other goroutines may mutate the graph,
// read fields from a View (Arc) rather than from the Edge.
type Edge struct {
	// ID is a stable identifier used by persistence and the HTTP surface.
	ID string

	// Name is the display name of the connection.
	Name string

	// Distance is static: events never change it.
	Distance float64

	// BaseTime and BaseCost are the undisturbed values.
	BaseTime float64
	BaseCost float64

	// Time and Cost are the current, possibly inflated values.
	Time float64
	Cost float64

	// Enabled is false while the link is unusable.
	Enabled bool

	// Event labels the current disruption ("Normal" when none).
	Event string

	from *Node
	to   *Node
}

// EdgeOption configures an Edge at creation.
type EdgeOption func(*Edge)

// WithEdgeID overrides the generated identifier (used by loaders).
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) {
		if id != "" {
			e.ID = id
		}
	}
}

// From returns the origin stop.
func (e *Edge) From() *Node { return e.from }

// To returns the destination stop.
func (e *Edge) To() *Node { return e.to }

// String renders "name: from -> to".
func (e *Edge) String() string {
	return e.Name + ": " + e.from.Name + " -> " + e.to.Name
}

// Reset restores the baseline time/cost, re-enables the edge and clears
// the event label. Calling it repeatedly has the same effect as once.
func (e *Edge) Reset() {
	e.Time = e.BaseTime
	e.Cost = e.BaseCost
	e.Enabled = true
	e.Event = EventNormalLabel
}

// Event is a disruption applied to an edge before a query.
type Event struct {
	// Label is the human-readable event name stored on the edge.
	Label string

	// Closed disables the edge; multipliers are then ignored.
	Closed bool

	// TimeFactor and CostFactor multiply the baseline values.
	TimeFactor float64
	CostFactor float64
}

// NormalEvent leaves an edge at its baseline.
var NormalEvent = Event{Label: EventNormalLabel, TimeFactor: 1, CostFactor: 1}

// Apply resets the edge to its baseline and then applies ev.
// Starting from the baseline every time prevents inflation from
// accumulating across queries.
func (e *Edge) Apply(ev Event) {
	e.Reset()
	e.Event = ev.Label
	if ev.Closed {
		e.Enabled = false
		return
	}
	e.Time = e.BaseTime * ev.TimeFactor
	e.Cost = e.BaseCost * ev.CostFactor
}

// Graph owns all stops and connections of a network.
//
// mu guards every field. Mutators take the write lock; introspection and
// snapshots take the read lock. The per-edge event state is rewritten only
// through ForEachEdge, which also holds the write lock.
type Graph struct {
	mu sync.RWMutex

	// nodes preserves registration order for deterministic iteration.
	nodes []*Node

	// out[n] lists edges leaving n; a key's presence means n is registered.
	out map[*Node][]*Edge

	nodesByID map[string]*Node
	edgesByID map[string]*Edge
}

// NewGraph creates an empty network.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		out:       make(map[*Node][]*Edge),
		nodesByID: make(map[string]*Node),
		edgesByID: make(map[string]*Edge),
	}
}

// validMetric reports whether x is usable as a metric value.
func validMetric(x float64) bool {
	return !math.IsNaN(x) && x >= 0
}
