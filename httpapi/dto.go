// SPDX-License-Identifier: MIT
// Package httpapi: request and response bodies.

package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/transit/network"
	"github.com/katalvlaran/transit/planner"
)

var validate = validator.New()

type createStopRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
}

type patchStopRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Category *string `json:"category"`
}

type createRouteRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Origin      string   `json:"origin" validate:"required"`
	Destination string   `json:"destination" validate:"required"`
	Distance    *float64 `json:"distance" validate:"required,gte=0"`
	Time        *float64 `json:"time" validate:"required,gte=0"`
	Cost        *float64 `json:"cost" validate:"required,gte=0"`
}

type patchRouteRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Origin      *string  `json:"origin" validate:"omitempty,min=1"`
	Destination *string  `json:"destination" validate:"omitempty,min=1"`
	Distance    *float64 `json:"distance" validate:"omitempty,gte=0"`
	Time        *float64 `json:"time" validate:"omitempty,gte=0"`
	Cost        *float64 `json:"cost" validate:"omitempty,gte=0"`
}

type bestRouteQuery struct {
	From      string `validate:"required"`
	To        string `validate:"required"`
	Criterion string `validate:"required"`
}

// decode reads a JSON body into dst and validates it.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

type stopJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

func stopOf(st network.Stop) stopJSON {
	return stopJSON{ID: st.ID, Name: st.Name, Category: st.Category}
}

type routeJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Distance    float64 `json:"distance"`
	BaseTime    float64 `json:"base_time"`
	BaseCost    float64 `json:"base_cost"`
	Time        float64 `json:"time"`
	Cost        float64 `json:"cost"`
	Enabled     bool    `json:"enabled"`
	Event       string  `json:"event"`
	Line        string  `json:"line"`
}

// routeOf renders an arc of a snapshot. Only frozen fields are read, never
// the live edge.
func routeOf(v *network.View, a network.Arc) routeJSON {
	return routeJSON{
		ID:          a.ID,
		Name:        a.Name,
		Origin:      v.Stop(a.From).ID,
		Destination: v.Stop(a.To).ID,
		Distance:    a.Distance,
		BaseTime:    a.BaseTime,
		BaseCost:    a.BaseCost,
		Time:        a.Time,
		Cost:        a.Cost,
		Enabled:     a.Enabled,
		Event:       a.Event,
		Line:        a.Line,
	}
}

type legJSON struct {
	Route       string  `json:"route"`
	Name        string  `json:"name"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Distance    float64 `json:"distance"`
	Time        float64 `json:"time"`
	Cost        float64 `json:"cost"`
	Event       string  `json:"event"`
	Line        string  `json:"line"`
}

type bestRouteResponse struct {
	Found     bool              `json:"found"`
	Criterion network.Criterion `json:"criterion"`
	Algorithm string            `json:"algorithm,omitempty"`
	Distance  float64           `json:"distance"`
	Time      float64           `json:"time"`
	Cost      float64           `json:"cost"`
	Weight    float64           `json:"weight"`
	Event     string            `json:"event,omitempty"`
	Transfers int               `json:"transfers"`
	Path      []legJSON         `json:"path"`
}

func summaryOf(sum planner.Summary, found bool) bestRouteResponse {
	out := bestRouteResponse{
		Found:     found,
		Criterion: sum.Criterion,
		Algorithm: sum.Algorithm,
		Distance:  sum.Distance,
		Time:      sum.Time,
		Cost:      sum.Cost,
		Weight:    sum.Weight,
		Event:     sum.Event,
		Transfers: sum.Transfers,
		Path:      make([]legJSON, 0, len(sum.Path)),
	}
	// Stops[i] and Stops[i+1] are the endpoints of Path[i].
	for i, a := range sum.Path {
		out.Path = append(out.Path, legJSON{
			Route:       a.ID,
			Name:        a.Name,
			Origin:      sum.Stops[i].ID,
			Destination: sum.Stops[i+1].ID,
			Distance:    a.Distance,
			Time:        a.Time,
			Cost:        a.Cost,
			Event:       a.Event,
			Line:        a.Line,
		})
	}

	return out
}

type treeResponse struct {
	Found     bool              `json:"found"`
	Method    string            `json:"method"`
	Criterion network.Criterion `json:"criterion"`
	Total     float64           `json:"total"`
	Routes    []string          `json:"routes"`
}
