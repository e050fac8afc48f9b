package main

import "fmt"

//go:generate caseiter -type=Phantom,Box
type Box struct {
	x int
}

func main() {
	fmt.Println("mixed failures")
}
