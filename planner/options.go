// SPDX-License-Identifier: MIT
// Package planner: functional options.
//
// Option constructors panic on nil inputs, matching the builder package.

package planner

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/transit/bellmanford"
	"github.com/katalvlaran/transit/events"
)

// Option configures a Planner.
type Option func(*Planner)

// WithSimulator replaces the event simulator. Panics on nil.
func WithSimulator(sim *events.Simulator) Option {
	if sim == nil {
		panic("planner: WithSimulator(nil)")
	}
	return func(p *Planner) {
		p.sim = sim
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("planner: WithLogger(nil)")
	}
	return func(p *Planner) {
		p.log = l.With(slog.String("component", "planner"))
	}
}

// WithRecorder installs a telemetry sink. Panics on nil.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("planner: WithRecorder(nil)")
	}
	return func(p *Planner) {
		p.rec = r
	}
}

// WithTransferPenalty overrides the per-transfer weight of the transfer
// search. Panics unless p > 0.
func WithTransferPenalty(penalty float64) Option {
	if !(penalty > 0) {
		panic("planner: WithTransferPenalty requires a positive value")
	}
	return func(p *Planner) {
		p.penalty = penalty
	}
}

func defaults(p *Planner) {
	p.sim = events.New(events.WithSeed(time.Now().UnixNano()))
	p.log = slog.Default().With(slog.String("component", "planner"))
	p.rec = nopRecorder{}
	p.penalty = bellmanford.TransferPenalty
}
