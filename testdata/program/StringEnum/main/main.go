package main

import "fmt"

//go:generate caseiter -type=Mood

type Mood string

const (
	Happy   Mood = "happy"
	Neutral Mood = "neutral"
	Sad     Mood = "sad"
)

func main() {
	// String-backed enums iterate in declaration order too, not in value
	// order.
	for it := AllMoodCases(); ; {
		v := it.Next()
		if v == nil {
			break
		}
		fmt.Println(*v)
	}
}
