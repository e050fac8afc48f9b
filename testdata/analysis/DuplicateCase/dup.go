package testdata

//go:generate caseiter -type=Color -seq

type Color int

const (
	Red   Color = 0
	Green Color = 1
	Lime  Color = 1 // want `constant Lime duplicates the value of case Green`
	Blue  Color = 2
)

//go:generate caseiter -type=Mode

type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeManual Mode = "manual"
	ModeAlways Mode = "auto"   // want `constant ModeAlways duplicates the value of case ModeAuto`
	ModeNever  Mode = "manual" // want `constant ModeNever duplicates the value of case ModeManual`
)
