package main

import "fmt"

//go:generate caseiter -type=Step

// Step is a pipeline stage tag.
type Step int

const (
	Extract Step = iota
	Transform
	Load
)

func main() {
	// Successor queries walk the declaration order and stop at the end.
	next := Extract.Next()
	fmt.Println(*next == Transform, *Transform.Next() == Load, Load.Next() == nil)

	// The iterator visits every case once, first to last.
	var order []Step
	it := AllStepCases()
	for v := it.Next(); v != nil; v = it.Next() {
		order = append(order, *v)
	}
	fmt.Println(order)

	// A spent iterator keeps returning nil.
	fmt.Println(it.Next(), it.Next())
}
