package testdata

import "time"

//go:generate caseiter -type=Season -seq

// Season is a healthy enum, so its directive must produce no diagnostics
// at all.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

//go:generate caseiter -type=climate

type climate string

const (
	arid     climate = "arid"
	tropical climate = "tropical"
)

// Loose declarations around the enums must not confuse the collector: a
// constant of a foreign type, an untyped constant, and a variable of the
// enum type are no cases of Season.
const warmup time.Duration = 0

const year = 2026

var current = Summer
