package main

import "fmt"

//go:generate caseiter -type=Ghost
type Ghost int

func main() {
	fmt.Println("no cases for Ghost")
}
