package main

import "fmt"

//go:generate caseiter -type=Priority

type Priority int

const (
	Urgent Priority = 30
	Low    Priority = 10
	Medium Priority = 20
)

func main() {
	// Iteration follows the declaration order, never the numeric order.
	var order []Priority
	for it := AllPriorityCases(); ; {
		v := it.Next()
		if v == nil {
			break
		}
		order = append(order, *v)
	}
	fmt.Println(order)
	fmt.Println(*Urgent.Next() == Low, Medium.Next() == nil)
}
