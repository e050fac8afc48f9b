package main

import "fmt"

//go:generate caseiter -type=jobState

type jobState int

const (
	pending jobState = iota
	running
	done
)

func main() {
	// An unexported enum gets an unexported entry point.
	var states []jobState
	for it := allJobStateCases(); ; {
		v := it.Next()
		if v == nil {
			break
		}
		states = append(states, *v)
	}
	fmt.Println(states, len(states))
}
