package main

import "fmt"

//go:generate caseiter -type=Only

type Only string

const Sole Only = "sole"

func main() {
	// The sole case is terminal and still seeds the iterator.
	fmt.Println(Sole.Next() == nil)

	it := AllOnlyCases()
	first := it.Next()
	fmt.Println(*first, it.Next() == nil)
}
