package testdata

// Every spelling of the caseiter command below names Broken, so its
// declaration collects one diagnostic per directive.
//
//go:generate caseiter -type=Broken
//go:generate go run github.com/ianbrault/case-iterable/cmd/caseiter -type Broken
//go:generate go tool caseiter -type=Broken -seq
type Broken struct{} // want `Broken is not an enum` `Broken is not an enum` `Broken is not an enum`

// Directives for other tools must not be picked up, even when their flags
// look like ours.
//
//go:generate stringer -type=Ignored
//go:generate go run golang.org/x/tools/cmd/stringer@latest -type=Ignored
type Ignored struct{}
