package main

import "fmt"

//go:generate caseiter -type=Box
type Box struct {
	x int
}

func main() {
	fmt.Println("never generated")
}
