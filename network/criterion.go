// SPDX-License-Identifier: MIT
// Package network: the closed set of optimization criteria.

package network

import (
	"fmt"
	"strings"
)

// Criterion selects the metric a query optimizes.
// The zero value is invalid so that an unset field is never mistaken for
// Distance.
type Criterion int

const (
	// Distance optimizes the static physical length of the path.
	Distance Criterion = iota + 1

	// Time optimizes the current (event-inflated) travel time.
	Time

	// Cost optimizes the current (event-inflated) fare.
	Cost

	// Transfers minimizes line changes, then distance.
	Transfers
)

var criterionNames = map[Criterion]string{
	Distance:  "distance",
	Time:      "time",
	Cost:      "cost",
	Transfers: "transfers",
}

// Criteria lists every valid criterion in declaration order.
func Criteria() []Criterion {
	return []Criterion{Distance, Time, Cost, Transfers}
}

// Valid reports whether c is one of the declared criteria.
func (c Criterion) Valid() bool {
	_, ok := criterionNames[c]
	return ok
}

// Metric reports whether c is a plain per-edge metric (distance, time or
// cost), as required by spanning-tree queries.
func (c Criterion) Metric() bool {
	return c == Distance || c == Time || c == Cost
}

// String returns the lower-case token of c.
func (c Criterion) String() string {
	if s, ok := criterionNames[c]; ok {
		return s
	}

	return fmt.Sprintf("criterion(%d)", int(c))
}

// ParseCriterion converts a case-insensitive token into a Criterion.
// Surrounding whitespace is ignored. Any other token returns
// ErrUnknownCriterion.
func ParseCriterion(s string) (Criterion, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for c, name := range criterionNames {
		if name == token {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Criterion) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCriterion, int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Criterion) UnmarshalText(text []byte) error {
	parsed, err := ParseCriterion(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
