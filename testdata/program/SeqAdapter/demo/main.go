package main

import "fmt"

//go:generate caseiter -type=Signal -seq

type Signal int

const (
	Hello Signal = iota
	Data
	Bye
)

func main() {
	// The range adapter visits every case.
	var all []Signal
	for v := range AllSignalCases().Seq() {
		all = append(all, v)
	}
	fmt.Println(all)

	// Breaking out of the range stops the sequence early.
	for v := range AllSignalCases().Seq() {
		if v == Data {
			break
		}
		fmt.Println(v)
	}
}
