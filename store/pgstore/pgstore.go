// SPDX-License-Identifier: MIT

// Package pgstore persists a transit network in PostgreSQL through pgx.
//
// Tables (created by EnsureSchema, never migrated):
//
//	stop(id, name, category)
//	route(id, name, origin, destination, distance, time, cost)
//
// Save replaces the whole network inside one transaction, bulk-loading
// rows with COPY.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/katalvlaran/transit/network"
	"github.com/katalvlaran/transit/store"
)

// ErrNilDB is returned by New without a database handle.
var ErrNilDB = errors.New("pgstore: db is nil")

// DB is the subset of *pgxpool.Pool used by the store.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS stop (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS route (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	origin      TEXT NOT NULL,
	destination TEXT NOT NULL,
	distance    DOUBLE PRECISION NOT NULL CHECK (distance >= 0),
	time        DOUBLE PRECISION NOT NULL CHECK (time >= 0),
	cost        DOUBLE PRECISION NOT NULL CHECK (cost >= 0)
);`

const (
	selectStops  = `SELECT id, name, category FROM stop ORDER BY id`
	selectRoutes = `SELECT id, name, origin, destination, distance, time, cost FROM route ORDER BY id`
)

var (
	stopColumns  = []string{"id", "name", "category"}
	routeColumns = []string{"id", "name", "origin", "destination", "distance", "time", "cost"}
)

// Store reads and writes the stop and route tables.
type Store struct {
	db DB
}

// New wraps an existing handle.
func New(db DB) (*Store, error) {
	if db == nil {
		return nil, ErrNilDB
	}

	return &Store{db: db}, nil
}

// Open connects a pool to dsn, verifies it and bootstraps the schema.
// The caller closes the returned pool.
func Open(ctx context.Context, dsn string) (*Store, *pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("pgstore: parse dsn: %w", err)
	}
	cfg.MaxConns = 4
	cfg.MaxConnLifetime = 5 * time.Minute
	cfg.MaxConnIdleTime = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("pgstore: connect: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pgstore: database unreachable: %w", err)
	}
	s := &Store{db: pool}
	if err = s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return s, pool, nil
}

// EnsureSchema creates the tables when absent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("pgstore: ensure schema: %w", err)
	}

	return nil
}

// Load reads every stop and route. Dangling routes are kept in the
// snapshot; store.Build skips them.
func (s *Store) Load(ctx context.Context) (*store.Snapshot, error) {
	snap := &store.Snapshot{}

	rows, err := s.db.Query(ctx, selectStops)
	if err != nil {
		return nil, fmt.Errorf("pgstore: query stops: %w", err)
	}
	for rows.Next() {
		var rec store.StopRecord
		if err = rows.Scan(&rec.ID, &rec.Name, &rec.Category); err != nil {
			rows.Close()
			return nil, fmt.Errorf("pgstore: scan stop: %w", err)
		}
		snap.Stops = append(snap.Stops, rec)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: read stops: %w", err)
	}

	rows, err = s.db.Query(ctx, selectRoutes)
	if err != nil {
		return nil, fmt.Errorf("pgstore: query routes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rec store.RouteRecord
		if err = rows.Scan(&rec.ID, &rec.Name, &rec.Origin, &rec.Destination,
			&rec.Distance, &rec.Time, &rec.Cost); err != nil {
			return nil, fmt.Errorf("pgstore: scan route: %w", err)
		}
		snap.Routes = append(snap.Routes, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgstore: read routes: %w", err)
	}

	return snap, nil
}

// Save replaces the stored network with the baseline state of g.
func (s *Store) Save(ctx context.Context, g *network.Graph) error {
	snap := store.FromGraph(g)

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM route`); err != nil {
			return fmt.Errorf("clear routes: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM stop`); err != nil {
			return fmt.Errorf("clear stops: %w", err)
		}

		stops := make([][]any, len(snap.Stops))
		for i, r := range snap.Stops {
			stops[i] = []any{r.ID, r.Name, r.Category}
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"stop"}, stopColumns, pgx.CopyFromRows(stops)); err != nil {
			return fmt.Errorf("copy stops: %w", err)
		}

		routes := make([][]any, len(snap.Routes))
		for i, r := range snap.Routes {
			routes[i] = []any{r.ID, r.Name, r.Origin, r.Destination, r.Distance, r.Time, r.Cost}
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"route"}, routeColumns, pgx.CopyFromRows(routes)); err != nil {
			return fmt.Errorf("copy routes: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("pgstore: save: %w", err)
	}

	return nil
}
