// SPDX-License-Identifier: MIT
// Package network: line identity and transfer counting.

package network

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NoLine is the sentinel line identity. It also marks the start state of
// the transfer-minimizing search, where boarding any line is free.
const NoLine = "-"

// LineOf derives the service line an edge belongs to.
//
// Fallback order: origin category, destination category, edge name. The
// chosen text is normalized (diacritics stripped, case-folded, trimmed) so
// that "Autobús" and "AUTOBUS" are the same line. An empty result is NoLine.
func LineOf(e *Edge) string {
	if e == nil {
		return NoLine
	}
	tag := ""
	if e.from != nil && strings.TrimSpace(e.from.Category) != "" {
		tag = e.from.Category
	} else if e.to != nil && strings.TrimSpace(e.to.Category) != "" {
		tag = e.to.Category
	} else {
		tag = e.Name
	}

	return NormalizeLine(tag)
}

// NormalizeLine applies the line-identity text normalization to s.
func NormalizeLine(s string) string {
	// Transformers carry state, so a fresh chain is built per call.
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(strip, s)
	if err != nil {
		out = s
	}
	out = strings.TrimSpace(cases.Fold().String(out))
	if out == "" {
		return NoLine
	}

	return out
}

// CountTransfers counts adjacent line changes along path.
// A path that stays on one line has zero transfers.
func CountTransfers(path Path) int {
	transfers := 0
	for i := 1; i < len(path); i++ {
		if path[i].Line != path[i-1].Line {
			transfers++
		}
	}

	return transfers
}
