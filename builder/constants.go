// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// constants.go: method tags and size minimums shared by constructors.

package builder

// Method tags used as error context.
const (
	MethodLine         = "Line"
	MethodRing         = "Ring"
	MethodStar         = "Star"
	MethodGrid         = "Grid"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
)

// HubID is the ID of the central stop created by Star.
const HubID = "Hub"

// Size minimums.
const (
	MinLineStops     = 2
	MinRingStops     = 3
	MinStarStops     = 2
	MinGridDim       = 1
	MinCompleteStops = 1
	MinSparseStops   = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
