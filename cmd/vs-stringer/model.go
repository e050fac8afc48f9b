package main

//go:generate go run golang.org/x/tools/cmd/stringer -type=Weekday
//go:generate go run github.com/ianbrault/case-iterable/cmd/caseiter -type=Weekday -seq

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)
