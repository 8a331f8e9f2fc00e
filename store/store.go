// SPDX-License-Identifier: MIT
// Package store: persisted records and the collaborator interfaces.

package store

import (
	"context"
	"errors"

	"github.com/katalvlaran/transit/network"
)

// ErrNilSnapshot is returned by Build when no snapshot is given.
var ErrNilSnapshot = errors.New("store: snapshot is nil")

// StopRecord is the persisted form of a network.Node.
type StopRecord struct {
	ID       string `yaml:"id" json:"id" validate:"required"`
	Name     string `yaml:"name" json:"name" validate:"required"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

// RouteRecord is the persisted form of a network.Edge. Origin and
// Destination hold stop IDs. Only baseline metrics are stored.
type RouteRecord struct {
	ID          string  `yaml:"id" json:"id" validate:"required"`
	Name        string  `yaml:"name" json:"name" validate:"required"`
	Origin      string  `yaml:"origin" json:"origin" validate:"required"`
	Destination string  `yaml:"destination" json:"destination" validate:"required"`
	Distance    float64 `yaml:"distance" json:"distance" validate:"gte=0"`
	Time        float64 `yaml:"time" json:"time" validate:"gte=0"`
	Cost        float64 `yaml:"cost" json:"cost" validate:"gte=0"`
}

// Snapshot is everything a store persists.
type Snapshot struct {
	Stops  []StopRecord  `yaml:"stops" json:"stops"`
	Routes []RouteRecord `yaml:"routes" json:"routes"`
}

// Loader reads a persisted network.
type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Persister writes a network. Callers decide what to do on failure.
type Persister interface {
	Save(ctx context.Context, g *network.Graph) error
}

// Store is a Loader that can also persist.
type Store interface {
	Loader
	Persister
}

// FromGraph captures the baseline state of g in registration order. It
// reads one base snapshot, so it is safe while other goroutines mutate g.
func FromGraph(g *network.Graph) *Snapshot {
	v := g.BaseSnapshot()
	snap := &Snapshot{
		Stops:  make([]StopRecord, 0, v.Len()),
		Routes: make([]RouteRecord, 0, len(v.Arcs())),
	}
	for _, st := range v.Stops() {
		snap.Stops = append(snap.Stops, StopRecord{ID: st.ID, Name: st.Name, Category: st.Category})
	}
	for _, a := range v.Arcs() {
		snap.Routes = append(snap.Routes, RouteRecord{
			ID:          a.ID,
			Name:        a.Name,
			Origin:      v.Stop(a.From).ID,
			Destination: v.Stop(a.To).ID,
			Distance:    a.Distance,
			Time:        a.BaseTime,
			Cost:        a.BaseCost,
		})
	}

	return snap
}
