// SPDX-License-Identifier: MIT
package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transit/events"
	"github.com/katalvlaran/transit/httpapi"
	"github.com/katalvlaran/transit/metrics"
	"github.com/katalvlaran/transit/network"
	"github.com/katalvlaran/transit/planner"
	"github.com/katalvlaran/transit/store"
)

// fixed makes every event draw return the same value (1..100).
type fixed int

func (f fixed) Intn(int) int { return int(f) - 1 }

type countingPersister struct {
	mu    sync.Mutex
	saves int
	last  *store.Snapshot
	err   error
}

func (p *countingPersister) Save(_ context.Context, g *network.Graph) error {
	snap := store.FromGraph(g)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves++
	p.last = snap
	return p.err
}

func (p *countingPersister) state() (int, *store.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves, p.last
}

type env struct {
	srv     *httptest.Server
	persist *countingPersister
	graph   *network.Graph
}

// newEnv serves A→B(10), B→C(1), A→C(20), C→D(1) with IDs equal to names.
func newEnv(t *testing.T, draw fixed) *env {
	t.Helper()
	g := network.NewGraph()
	nodes := map[string]*network.Node{}
	for _, name := range []string{"A", "B", "C", "D"} {
		n, err := network.NewNode(name, "", network.WithNodeID(name))
		require.NoError(t, err)
		require.NoError(t, g.AddNode(n))
		nodes[name] = n
	}
	for _, e := range []struct {
		from, to string
		w        float64
	}{{"A", "B", 10}, {"B", "C", 1}, {"A", "C", 20}, {"C", "D", 1}} {
		id := e.from + e.to
		_, err := g.AddEdge(id, nodes[e.from], nodes[e.to], e.w, e.w, e.w, network.WithEdgeID(id))
		require.NoError(t, err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := metrics.NewRegistry()
	p, err := planner.New(g,
		planner.WithSimulator(events.New(events.WithSource(draw))),
		planner.WithLogger(logger),
		planner.WithRecorder(reg))
	require.NoError(t, err)

	persist := &countingPersister{}
	api := httpapi.New(p,
		httpapi.WithPersister(persist),
		httpapi.WithMetrics(reg.Handler()),
		httpapi.WithLogger(logger))
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	return &env{srv: srv, persist: persist, graph: g}
}

func (e *env) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.srv.URL+path, rd)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestBestRoute_Distance(t *testing.T) {
	e := newEnv(t, 100)
	status, body := e.do(t, http.MethodGet, "/api/best-route?from=A&to=D&criterion=Distance", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, 12.0, body["distance"])
	assert.Equal(t, "distance", body["criterion"])
	assert.Equal(t, planner.AlgorithmFloydWarshall, body["algorithm"])
	path := body["path"].([]any)
	require.Len(t, path, 3)
	assert.Equal(t, "AB", path[0].(map[string]any)["route"])
}

func TestBestRoute_StatusMapping(t *testing.T) {
	e := newEnv(t, 1) // every edge closed

	status, body := e.do(t, http.MethodGet, "/api/best-route?from=A&to=B&criterion=time", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["found"])
	assert.Equal(t, "time", body["criterion"])

	status, _ = e.do(t, http.MethodGet, "/api/best-route?from=A&to=B&criterion=speed", "")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = e.do(t, http.MethodGet, "/api/best-route?from=A&criterion=time", "")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = e.do(t, http.MethodGet, "/api/best-route?from=A&to=Z&criterion=time", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBestRoute_NegativeCycleIs500(t *testing.T) {
	e := newEnv(t, 100)
	ab, _ := e.graph.EdgeByID("AB")
	a, _ := e.graph.NodeByID("A")
	b, _ := e.graph.NodeByID("B")
	back, err := e.graph.AddEdge("BA", b, a, 1, 1, 1, network.WithEdgeID("BA"))
	require.NoError(t, err)
	ab.BaseTime = 1
	back.BaseTime = -3

	status, body := e.do(t, http.MethodGet, "/api/best-route?from=A&to=D&criterion=time", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body["error"], "negative")
}

func TestMutations_PersistAfterSuccess(t *testing.T) {
	e := newEnv(t, 100)

	status, body := e.do(t, http.MethodPost, "/api/stops", `{"id":"E","name":"Estación","category":"Verde"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "E", body["id"])

	status, _ = e.do(t, http.MethodPost, "/api/routes",
		`{"id":"DE","name":"DE","origin":"D","destination":"E","distance":2,"time":3,"cost":1}`)
	require.Equal(t, http.StatusCreated, status)

	status, body = e.do(t, http.MethodPatch, "/api/routes/DE", `{"time":7}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 7.0, body["base_time"])
	assert.Equal(t, 7.0, body["time"])

	status, body = e.do(t, http.MethodGet, "/api/stops/D/routes", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1.0, body["count"])

	status, body = e.do(t, http.MethodGet, "/api/stops/A/reachable", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5.0, body["count"])

	status, _ = e.do(t, http.MethodDelete, "/api/routes/DE", "")
	require.Equal(t, http.StatusNoContent, status)
	status, _ = e.do(t, http.MethodDelete, "/api/stops/E", "")
	require.Equal(t, http.StatusNoContent, status)

	saves, _ := e.persist.state()
	assert.Equal(t, 5, saves)

	status, body = e.do(t, http.MethodGet, "/api/stops", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4.0, body["count"])
}

func TestMutations_ValidationAndNotFound(t *testing.T) {
	e := newEnv(t, 100)

	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodPost, "/api/stops", `{"name":""}`, http.StatusBadRequest},
		{http.MethodPost, "/api/stops", `{"name":"X","color":"red"}`, http.StatusBadRequest},
		{http.MethodPost, "/api/stops", `{"id":"A","name":"Dup"}`, http.StatusBadRequest},
		{http.MethodPost, "/api/routes", `{"name":"R","origin":"A","destination":"B","distance":-1,"time":1,"cost":1}`, http.StatusBadRequest},
		{http.MethodPost, "/api/routes", `{"name":"R","origin":"A","destination":"B","time":1,"cost":1}`, http.StatusBadRequest},
		{http.MethodPost, "/api/routes", `{"name":"R","origin":"A","destination":"Z","distance":1,"time":1,"cost":1}`, http.StatusNotFound},
		{http.MethodPatch, "/api/routes/AB", `{"cost":-2}`, http.StatusBadRequest},
		{http.MethodPatch, "/api/routes/ZZ", `{"cost":2}`, http.StatusNotFound},
		{http.MethodPatch, "/api/routes/AB", `{"origin":"Z"}`, http.StatusNotFound},
		{http.MethodDelete, "/api/stops/Z", "", http.StatusNotFound},
		{http.MethodPatch, "/api/stops/Z", `{"name":"Zeta"}`, http.StatusNotFound},
		{http.MethodPatch, "/api/stops/A", `{"name":""}`, http.StatusBadRequest},
		{http.MethodPatch, "/api/stops/A", `{"line":"x"}`, http.StatusBadRequest},
		{http.MethodDelete, "/api/routes/ZZ", "", http.StatusNotFound},
		{http.MethodGet, "/api/stops/Z/routes", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		status, _ := e.do(t, tc.method, tc.path, tc.body)
		assert.Equal(t, tc.want, status, "%s %s %s", tc.method, tc.path, tc.body)
	}
	saves, _ := e.persist.state()
	assert.Zero(t, saves)
}

func TestPersistFailureDoesNotFailRequest(t *testing.T) {
	e := newEnv(t, 100)
	e.persist.mu.Lock()
	e.persist.err = errors.New("disk full")
	e.persist.mu.Unlock()
	status, _ := e.do(t, http.MethodPost, "/api/stops", `{"name":"Z"}`)
	assert.Equal(t, http.StatusCreated, status)
	saves, _ := e.persist.state()
	assert.Equal(t, 1, saves)
}

func TestSpanningTreeAndMetrics(t *testing.T) {
	e := newEnv(t, 100)

	status, body := e.do(t, http.MethodGet, "/api/spanning-tree?criterion=distance&method=prim", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, 12.0, body["total"])
	assert.Len(t, body["routes"], 3)

	status, _ = e.do(t, http.MethodGet, "/api/spanning-tree?criterion=transfers", "")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = e.do(t, http.MethodGet, "/api/spanning-tree?criterion=cost&method=boruvka", "")
	assert.Equal(t, http.StatusBadRequest, status)

	_, _ = e.do(t, http.MethodPost, "/api/stops", `{"id":"Z","name":"Island"}`)
	status, body = e.do(t, http.MethodGet, "/api/spanning-tree?criterion=cost", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["found"])

	resp, err := http.Get(e.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `transit_mst_queries_total{method="prim",outcome="found"} 1`)
	assert.Contains(t, string(raw), `transit_mst_queries_total{method="invalid",outcome="error"} 1`)
	assert.NotContains(t, string(raw), "boruvka")
}

func TestPatchStop(t *testing.T) {
	e := newEnv(t, 100)

	status, body := e.do(t, http.MethodPatch, "/api/stops/B", `{"name":"Bahía","category":"Azul"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "B", body["id"])
	assert.Equal(t, "Bahía", body["name"])
	assert.Equal(t, "Azul", body["category"])

	status, body = e.do(t, http.MethodPatch, "/api/stops/B", `{"category":""}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Bahía", body["name"])
	assert.Nil(t, body["category"])

	saves, last := e.persist.state()
	assert.Equal(t, 2, saves)
	require.NotNil(t, last)
	assert.Equal(t, store.StopRecord{ID: "B", Name: "Bahía"}, last.Stops[1])

	status, body = e.do(t, http.MethodGet, "/api/best-route?from=A&to=D&criterion=distance", "")
	require.Equal(t, http.StatusOK, status)
	leg := body["path"].([]any)[0].(map[string]any)
	assert.Equal(t, "A", leg["origin"])
	assert.Equal(t, "B", leg["destination"])
}

// Mutations, listings, persistence and queries run on separate requests
// at once. Run with -race.
func TestConcurrentMutationsAndReads(t *testing.T) {
	e := newEnv(t, 30)

	const rounds = 40
	var wg sync.WaitGroup
	run := func(fn func(i int)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				fn(i)
			}
		}()
	}
	run(func(i int) {
		dest := "C"
		if i%2 == 1 {
			dest = "D"
		}
		status, _ := e.do(t, http.MethodPatch, "/api/routes/AB",
			fmt.Sprintf(`{"name":"AB-%d","time":%d,"destination":%q}`, i, i+1, dest))
		assert.Equal(t, http.StatusOK, status)
	})
	run(func(i int) {
		status, _ := e.do(t, http.MethodPatch, "/api/stops/C", fmt.Sprintf(`{"name":"C-%d"}`, i))
		assert.Equal(t, http.StatusOK, status)
	})
	run(func(int) {
		status, _ := e.do(t, http.MethodGet, "/api/routes", "")
		assert.Equal(t, http.StatusOK, status)
	})
	run(func(int) {
		status, _ := e.do(t, http.MethodGet, "/api/best-route?from=A&to=D&criterion=time", "")
		assert.Equal(t, http.StatusOK, status)
	})
	run(func(int) {
		status, _ := e.do(t, http.MethodGet, "/api/stops/A/reachable", "")
		assert.Equal(t, http.StatusOK, status)
	})
	wg.Wait()

	saves, _ := e.persist.state()
	assert.Equal(t, 2*rounds, saves)
}
