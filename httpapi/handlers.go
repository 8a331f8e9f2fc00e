// SPDX-License-Identifier: MIT
// Package httpapi: endpoint handlers.

package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/transit/network"
)

func (s *Server) stopByID(r *http.Request) (*network.Node, error) {
	id := mux.Vars(r)["id"]
	n, ok := s.planner.Graph().NodeByID(id)
	if !ok {
		return nil, fmt.Errorf("stop %q: %w", id, network.ErrNodeNotFound)
	}

	return n, nil
}

func (s *Server) routeByID(r *http.Request) (*network.Edge, error) {
	id := mux.Vars(r)["id"]
	e, ok := s.planner.Graph().EdgeByID(id)
	if !ok {
		return nil, fmt.Errorf("route %q: %w", id, network.ErrEdgeNotFound)
	}

	return e, nil
}

func (s *Server) listStops(w http.ResponseWriter, r *http.Request) {
	stops := s.planner.Graph().BaseSnapshot().Stops()
	out := make([]stopJSON, len(stops))
	for i, st := range stops {
		out[i] = stopOf(st)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"stops": out, "count": len(out)})
}

func (s *Server) createStop(w http.ResponseWriter, r *http.Request) {
	var req createStopRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	n, err := network.NewNode(req.Name, req.Category, network.WithNodeID(req.ID))
	if err == nil {
		err = s.planner.Graph().AddNode(n)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.persist(r.Context())
	s.writeStop(w, r, http.StatusCreated, n)
}

func (s *Server) patchStop(w http.ResponseWriter, r *http.Request) {
	n, err := s.stopByID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req patchStopRequest
	if err = decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err = s.planner.Graph().ModifyNode(n, network.NodeChange{Name: req.Name, Category: req.Category}); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.persist(r.Context())
	s.writeStop(w, r, http.StatusOK, n)
}

// writeStop renders n as currently labeled. A stop removed in the
// meantime is reported as not found.
func (s *Server) writeStop(w http.ResponseWriter, r *http.Request, status int, n *network.Node) {
	st, ok := s.planner.Graph().StopOf(n)
	if !ok {
		s.writeError(w, r, fmt.Errorf("stop %q: %w", n.ID, network.ErrNodeNotFound))
		return
	}
	s.writeJSON(w, status, stopOf(st))
}

func (s *Server) deleteStop(w http.ResponseWriter, r *http.Request) {
	n, err := s.stopByID(r)
	if err == nil {
		err = s.planner.Graph().RemoveNode(n)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) stopRoutes(w http.ResponseWriter, r *http.Request) {
	n, err := s.stopByID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	v := s.planner.Graph().Snapshot()
	idx, ok := v.Index(n)
	if !ok {
		s.writeError(w, r, fmt.Errorf("stop %q: %w", n.ID, network.ErrNodeNotFound))
		return
	}
	out := make([]routeJSON, 0, len(v.Out(idx)))
	for _, ai := range v.Out(idx) {
		out = append(out, routeOf(v, v.Arc(ai)))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"routes": out, "count": len(out)})
}

func (s *Server) reachable(w http.ResponseWriter, r *http.Request) {
	n, err := s.stopByID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	stops, err := s.planner.Reachable(n)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]stopJSON, len(stops))
	for i, st := range stops {
		out[i] = stopOf(st)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"stops": out, "count": len(out)})
}

func (s *Server) listRoutes(w http.ResponseWriter, r *http.Request) {
	v := s.planner.Graph().Snapshot()
	out := make([]routeJSON, 0, len(v.Arcs()))
	for _, a := range v.Arcs() {
		out = append(out, routeOf(v, a))
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"routes": out, "count": len(out)})
}

func (s *Server) createRoute(w http.ResponseWriter, r *http.Request) {
	var req createRouteRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g := s.planner.Graph()
	from, ok := g.NodeByID(req.Origin)
	if !ok {
		s.writeError(w, r, fmt.Errorf("origin %q: %w", req.Origin, network.ErrNodeNotFound))
		return
	}
	to, ok := g.NodeByID(req.Destination)
	if !ok {
		s.writeError(w, r, fmt.Errorf("destination %q: %w", req.Destination, network.ErrNodeNotFound))
		return
	}
	e, err := g.AddEdge(req.Name, from, to, *req.Distance, *req.Time, *req.Cost, network.WithEdgeID(req.ID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.persist(r.Context())
	s.writeJSON(w, http.StatusCreated, s.routeJSON(e))
}

func (s *Server) patchRoute(w http.ResponseWriter, r *http.Request) {
	e, err := s.routeByID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req patchRouteRequest
	if err = decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g := s.planner.Graph()
	ch := network.EdgeChange{Name: req.Name, Distance: req.Distance, Time: req.Time, Cost: req.Cost}
	if req.Origin != nil {
		n, ok := g.NodeByID(*req.Origin)
		if !ok {
			s.writeError(w, r, fmt.Errorf("origin %q: %w", *req.Origin, network.ErrNodeNotFound))
			return
		}
		ch.From = n
	}
	if req.Destination != nil {
		n, ok := g.NodeByID(*req.Destination)
		if !ok {
			s.writeError(w, r, fmt.Errorf("destination %q: %w", *req.Destination, network.ErrNodeNotFound))
			return
		}
		ch.To = n
	}
	if err = g.ModifyEdge(e, ch); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.persist(r.Context())
	s.writeJSON(w, http.StatusOK, s.routeJSON(e))
}

func (s *Server) deleteRoute(w http.ResponseWriter, r *http.Request) {
	e, err := s.routeByID(r)
	if err == nil {
		err = s.planner.Graph().RemoveEdge(e)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// routeJSON renders e from a fresh snapshot.
func (s *Server) routeJSON(e *network.Edge) routeJSON {
	v := s.planner.Graph().Snapshot()
	for _, a := range v.Arcs() {
		if a.Edge == e {
			return routeOf(v, a)
		}
	}

	return routeJSON{ID: e.ID}
}

func (s *Server) bestRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := bestRouteQuery{From: q.Get("from"), To: q.Get("to"), Criterion: q.Get("criterion")}
	if err := validate.Struct(req); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	c, err := network.ParseCriterion(req.Criterion)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sum, found, err := s.planner.BestRouteByID(req.From, req.To, c.String())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := summaryOf(sum, found)
	resp.Criterion = c
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) spanningTree(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := network.ParseCriterion(q.Get("criterion"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	method := q.Get("method")
	if method == "" {
		method = "kruskal"
	}
	tree, ok, err := s.planner.MinimumSpanningTree(c, method)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := treeResponse{Found: ok, Method: tree.Method, Criterion: c, Total: tree.Total, Routes: []string{}}
	for _, e := range tree.Edges {
		resp.Routes = append(resp.Routes, e.ID)
	}
	if !ok {
		resp.Method = method
	}
	s.writeJSON(w, http.StatusOK, resp)
}
