// SPDX-License-Identifier: MIT
// Package httpapi: JSON encoding and error-to-status mapping.

package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/transit/network"
	"github.com/katalvlaran/transit/planner"
)

// errBadRequest marks malformed bodies and failed request validation.
var errBadRequest = errors.New("httpapi: bad request")

var validationErrors = []error{
	errBadRequest,
	network.ErrNilNode,
	network.ErrNilEdge,
	network.ErrBlankName,
	network.ErrNegativeMetric,
	network.ErrUnknownCriterion,
	network.ErrDuplicateID,
	planner.ErrInvalidMSTRequest,
}

var notFoundErrors = []error{
	network.ErrNodeNotFound,
	network.ErrEdgeNotFound,
}

// statusOf maps an error to its HTTP status.
func statusOf(err error) int {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}

	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", slog.Any("error", err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.log.Log(r.Context(), level, "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err))
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
