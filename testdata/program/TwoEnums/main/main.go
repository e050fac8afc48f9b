package main

import "fmt"

//go:generate caseiter -type=Color,Phase

type (
	Color int
	Phase int
)

const (
	Red Color = iota
	Green
	Blue
)

const (
	Solid Phase = iota
	Liquid
	Gas
)

// collect drains an iterator with a Next method into a slice.
func collect[T any, I interface{ Next() *T }](it I) []T {
	var all []T
	for v := it.Next(); v != nil; v = it.Next() {
		all = append(all, *v)
	}
	return all
}

func main() {
	// Each enum gets its own iterator; the constants of one never leak
	// into the other even though both underlie int.
	fmt.Println(collect[Color](AllColorCases()), collect[Phase](AllPhaseCases()))
}
