package main

import "fmt"

//go:generate caseiter -type=Color
type Color int

const (
	Red    Color = 0
	Green  Color = 1
	Maroon Color = 0
	Blue   Color = 2
)

func main() {
	fmt.Println(Red)
}
