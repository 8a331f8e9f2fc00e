// SPDX-License-Identifier: MIT
// Package events: outcome table and per-query simulation pass.

package events

import (
	"math/rand"

	"github.com/katalvlaran/transit/network"
)

// Event labels stored on edges.
const (
	LabelSevere = "Severe accident (closed)"
	LabelMinor  = "Minor accident (severe delay)"
	LabelDelay  = "Delay"
	LabelRain   = "Rain"
	LabelNormal = network.EventNormalLabel
)

// MaxDraw is the upper bound of a draw; draws are uniform in [1, MaxDraw].
const MaxDraw = 100

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Outcome binds an event to the inclusive upper bound of its draw range.
type Outcome struct {
	Max   int
	Event network.Event
}

// DefaultTable is the cumulative outcome table, ordered by Max.
var DefaultTable = []Outcome{
	{Max: 5, Event: network.Event{Label: LabelSevere, Closed: true}},
	{Max: 15, Event: network.Event{Label: LabelMinor, TimeFactor: 2.0, CostFactor: 1.3}},
	{Max: 30, Event: network.Event{Label: LabelDelay, TimeFactor: 1.5, CostFactor: 1.2}},
	{Max: 40, Event: network.Event{Label: LabelRain, TimeFactor: 1.2, CostFactor: 1.1}},
	{Max: MaxDraw, Event: network.NormalEvent},
}

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Tally counts applied outcomes by label.
type Tally map[string]int

// Simulator draws one outcome per edge.
type Simulator struct {
	src Source
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed uses a deterministic *rand.Rand. seed==0 selects the default seed.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = defaultSeed
	}
	return func(s *Simulator) {
		s.src = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("events: WithRand(nil)")
	}
	return func(s *Simulator) {
		s.src = r
	}
}

// WithSource uses an arbitrary source, typically a scripted one in tests.
// Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("events: WithSource(nil)")
	}
	return func(s *Simulator) {
		s.src = src
	}
}

// New returns a Simulator seeded with the default seed unless an option
// overrides the source.
func New(opts ...Option) *Simulator {
	s := &Simulator{}
	WithSeed(0)(s)
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Classify maps a draw to its outcome. Draws outside [1, MaxDraw] are Normal.
func Classify(draw int) network.Event {
	if draw < 1 || draw > MaxDraw {
		return network.NormalEvent
	}
	for _, o := range DefaultTable {
		if draw <= o.Max {
			return o.Event
		}
	}

	return network.NormalEvent
}

// Draw returns the next uniform integer in [1, MaxDraw].
func (s *Simulator) Draw() int {
	return s.src.Intn(MaxDraw) + 1
}

// Run resets every edge of g and applies a freshly drawn outcome to it.
// The returned tally has one entry per label that occurred.
// Complexity: O(E).
func (s *Simulator) Run(g *network.Graph) Tally {
	tally := make(Tally)
	g.ForEachEdge(func(e *network.Edge) {
		ev := Classify(s.Draw())
		e.Apply(ev)
		tally[ev.Label]++
	})

	return tally
}
