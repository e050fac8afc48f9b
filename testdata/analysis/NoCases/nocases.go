package testdata

//go:generate caseiter -type=Color
type Color int // want `enum Color declares no constants`

// Weight declares a blank constant only. Blank constants cannot be named by
// the generated switch, so they do not count as cases.
//
//go:generate caseiter -type=Weight
type Weight float64 // want `enum Weight declares no constants`

const _ Weight = 2.5
