package main

const (
	Saturday Day = iota + 5
	Sunday
)
