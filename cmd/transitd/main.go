// SPDX-License-Identifier: MIT

// Command transitd serves the transit route planner over HTTP.
//
// Usage:
//
//	transitd [-config transitd.yaml] [-demo]
//
// Settings come from the optional YAML file and TRANSIT_* environment
// variables (see package config). With -demo an empty store is seeded
// with a generated two-line network.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/transit/builder"
	"github.com/katalvlaran/transit/config"
	"github.com/katalvlaran/transit/events"
	"github.com/katalvlaran/transit/httpapi"
	"github.com/katalvlaran/transit/metrics"
	"github.com/katalvlaran/transit/network"
	"github.com/katalvlaran/transit/planner"
	"github.com/katalvlaran/transit/store"
	"github.com/katalvlaran/transit/store/pgstore"
	"github.com/katalvlaran/transit/store/yamlstore"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	demo := flag.Bool("demo", false, "seed an empty store with a generated network")
	flag.Parse()

	if err := run(*configPath, *demo); err != nil {
		fmt.Fprintln(os.Stderr, "transitd:", err)
		os.Exit(1)
	}
}

func run(configPath string, demo bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	snap, err := st.Load(ctx)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	g, _, err := store.Build(snap, logger)
	if err != nil {
		return err
	}
	if demo && g.NodeCount() == 0 {
		if err = seedDemo(g); err != nil {
			return err
		}
		if err = st.Save(ctx, g); err != nil {
			logger.Warn("persist demo network", slog.Any("error", err))
		}
		logger.Info("demo network generated",
			slog.Int("stops", g.NodeCount()), slog.Int("routes", g.EdgeCount()))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	reg := metrics.NewRegistry()
	p, err := planner.New(g,
		planner.WithSimulator(events.New(events.WithSeed(seed))),
		planner.WithLogger(logger),
		planner.WithRecorder(reg),
		planner.WithTransferPenalty(cfg.TransferPenalty))
	if err != nil {
		return err
	}

	api := httpapi.New(p,
		httpapi.WithPersister(st),
		httpapi.WithMetrics(reg.Handler()),
		httpapi.WithLogger(logger))
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("transitd listening",
			slog.String("addr", cfg.Addr), slog.String("store", cfg.Store), slog.Int64("seed", seed))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server exited")

	return nil
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	switch cfg.Store {
	case config.StorePostgres:
		s, pool, err := pgstore.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return s, pool.Close, nil
	default:
		s, err := yamlstore.New(cfg.Data)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}

// seedDemo builds a red ring R0..R5 and a blue line B0..B4 joined by a
// walking transfer between R0 and B0.
func seedDemo(g *network.Graph) error {
	if err := builder.Extend(g,
		[]builder.BuilderOption{builder.WithSymbNumb("R"), builder.WithCategory("Red"),
			builder.WithSeed(1), builder.WithUniformMetrics(1, 8)},
		builder.Ring(6),
	); err != nil {
		return err
	}
	if err := builder.Extend(g,
		[]builder.BuilderOption{builder.WithSymbNumb("B"), builder.WithCategory("Blue"),
			builder.WithSeed(2), builder.WithUniformMetrics(2, 10)},
		builder.Line(5),
	); err != nil {
		return err
	}
	r0, _ := g.NodeByID("R0")
	b0, _ := g.NodeByID("B0")
	if _, err := g.AddEdge("walk", r0, b0, 0.3, 4, 0); err != nil {
		return err
	}
	_, err := g.AddEdge("walk", b0, r0, 0.3, 4, 0)

	return err
}
