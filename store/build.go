// SPDX-License-Identifier: MIT
// Package store: graph reconstruction from a snapshot.

package store

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/transit/network"
)

var validate = validator.New()

// Skip describes one record left out of a rebuilt graph.
type Skip struct {
	Kind   string // "stop" or "route"
	ID     string
	Reason string
}

// BuildReport summarizes a Build call.
type BuildReport struct {
	Stops   int
	Routes  int
	Skipped []Skip
}

// Build rebuilds a graph from snap. Invalid records, duplicate IDs and
// routes that reference a missing stop are skipped with a WARN entry and
// listed in the report; they never abort the load. A nil logger selects
// slog.Default().
func Build(snap *Snapshot, logger *slog.Logger) (*network.Graph, BuildReport, error) {
	var report BuildReport
	if snap == nil {
		return nil, report, ErrNilSnapshot
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "store"))

	skip := func(kind, id, reason string) {
		report.Skipped = append(report.Skipped, Skip{Kind: kind, ID: id, Reason: reason})
		logger.Warn("skipping record",
			slog.String("kind", kind), slog.String("id", id), slog.String("reason", reason))
	}

	g := network.NewGraph()
	stops := make(map[string]*network.Node, len(snap.Stops))
	for _, rec := range snap.Stops {
		if err := validate.Struct(rec); err != nil {
			skip("stop", rec.ID, err.Error())
			continue
		}
		if _, dup := stops[rec.ID]; dup {
			skip("stop", rec.ID, "duplicate id")
			continue
		}
		n, err := network.NewNode(rec.Name, rec.Category, network.WithNodeID(rec.ID))
		if err == nil {
			err = g.AddNode(n)
		}
		if err != nil {
			skip("stop", rec.ID, err.Error())
			continue
		}
		stops[rec.ID] = n
		report.Stops++
	}

	for _, rec := range snap.Routes {
		if err := validate.Struct(rec); err != nil {
			skip("route", rec.ID, err.Error())
			continue
		}
		from, ok := stops[rec.Origin]
		if !ok {
			skip("route", rec.ID, fmt.Sprintf("origin %q not found", rec.Origin))
			continue
		}
		to, ok := stops[rec.Destination]
		if !ok {
			skip("route", rec.ID, fmt.Sprintf("destination %q not found", rec.Destination))
			continue
		}
		if _, err := g.AddEdge(rec.Name, from, to, rec.Distance, rec.Time, rec.Cost, network.WithEdgeID(rec.ID)); err != nil {
			skip("route", rec.ID, err.Error())
			continue
		}
		report.Routes++
	}

	logger.Info("network loaded",
		slog.Int("stops", report.Stops),
		slog.Int("routes", report.Routes),
		slog.Int("skipped", len(report.Skipped)))

	return g, report, nil
}
