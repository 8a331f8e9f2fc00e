// SPDX-License-Identifier: MIT
// Package planner: result types, sentinel errors and the metrics hook.

package planner

import (
	"errors"
	"time"

	"github.com/katalvlaran/transit/events"
	"github.com/katalvlaran/transit/network"
)

var (
	// ErrNilGraph is returned by New when no graph is supplied.
	ErrNilGraph = errors.New("planner: graph is nil")

	// ErrInvalidMSTRequest marks a spanning-tree request with an unknown
	// method or a criterion that has no per-edge weight.
	ErrInvalidMSTRequest = errors.New("planner: invalid spanning tree request")
)

// Solver names reported in Summary.Algorithm.
const (
	AlgorithmFloydWarshall = "floyd-warshall"
	AlgorithmDijkstra      = "dijkstra"
	AlgorithmBellmanFord   = "bellman-ford"
	AlgorithmTransfers     = "bellman-ford-transfers"
	AlgorithmNone          = "none"
)

// EventNotApplicable is the Summary.Event of distance queries, which
// ignore event inflation.
const EventNotApplicable = "N/A"

// MethodInvalid is the method label recorded for unparseable spanning
// tree methods, keeping the label set closed.
const MethodInvalid = "invalid"

// Query outcomes passed to a Recorder.
const (
	OutcomeFound   = "found"
	OutcomeNoRoute = "no_route"
	OutcomeError   = "error"
)

// Summary is the immutable result of one route query.
type Summary struct {
	Path network.Path
	// Stops are the visited stops as labeled at query time, origin first.
	// len(Stops) == len(Path)+1 for a non-empty route.
	Stops     []network.Stop
	Distance  float64
	Time      float64
	Cost      float64
	Weight    float64 // optimized quantity; the transfer count for Transfers
	Event     string  // first non-Normal event on the path
	Transfers int
	Criterion network.Criterion
	Algorithm string
}

// Edges returns the edges of the path in travel order.
func (s Summary) Edges() []*network.Edge { return s.Path.Edges() }

// Tree is a minimum spanning tree over the undirected projection.
type Tree struct {
	Edges     []*network.Edge
	Total     float64
	Method    string
	Criterion network.Criterion
}

// Recorder receives query telemetry. metrics.Registry implements it.
type Recorder interface {
	RouteQuery(criterion, algorithm, outcome string, elapsed time.Duration)
	EdgeEvents(tally events.Tally)
	SpanningTreeQuery(method, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RouteQuery(string, string, string, time.Duration) {}
func (nopRecorder) EdgeEvents(events.Tally)                          {}
func (nopRecorder) SpanningTreeQuery(string, string)                 {}
