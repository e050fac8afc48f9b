// Package caseiterable generates iteration support for enum types.
//
// Go spells an enum as a defined type with a basic underlying type plus a
// block of constants:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
// The type system knows every case, but there is no way to ask what comes
// after Red, or to range over the cases, without hand-writing a slice that
// silently drifts when someone appends a case. The caseiter command derives
// that machinery from the declarations themselves:
//
//	//go:generate go run github.com/ianbrault/case-iterable/cmd/caseiter -type=Color
//
// generates color_caseiter.go with, in declaration order:
//
//	func (c Color) Next() *Color        // successor; nil for the last case
//	type ColorIterator struct{ ... }    // iteration state
//	func AllColorCases() *ColorIterator // every case, first to last
//
// The iterator's Next returns the current case and advances, so the
// canonical loop is:
//
//	it := AllColorCases()
//	for c := it.Next(); c != nil; c = it.Next() {
//		fmt.Println(*c)
//	}
//
// An exhausted iterator keeps returning nil. With -seq the bundle also
// carries a range adapter:
//
//	for c := range AllColorCases().Seq() {
//		fmt.Println(c)
//	}
//
// Generated names derive from the type: Color gets ColorIterator and
// AllColorCases, an unexported jobState gets jobStateIterator and
// allJobStateCases, so the bundle inherits the enum's visibility.
//
// # Eligible types
//
// A type qualifies when it is a defined type, not an alias and not generic,
// whose underlying type is basic, and the package declares at least one
// constant of exactly that type. Cases keep their declaration order across
// const blocks and files. Two constants sharing a value cannot both take
// part in the successor switch, so duplicates are rejected up front.
//
// # Diagnostics
//
// Every validation failure of a run is reported together, positioned at the
// offending declaration, and no file is written while any stands. Programs
// inspecting failures can unwrap the typed kinds from package
// caseitererrors. The caseiter analyzer in package caseiteranalysis surfaces
// the same diagnostics in editors and golangci-lint without generating
// anything.
package caseiterable

import (
	"context"

	caseiterinternal "github.com/ianbrault/case-iterable/internal/caseiter"
)

// Options configures [Generate].
type Options struct {
	// Types names the enum types to generate iterators for. At least one
	// is required.
	Types []string

	// Seq adds a Seq method returning an iter.Seq to every iterator.
	Seq bool

	// OutFile collects all generated code into a single file instead of
	// one <type>_caseiter.go per enum.
	OutFile string

	// Tags lists extra build tags for package loading.
	Tags string

	// Tests includes the package's test files when resolving enums.
	Tests bool

	// Args echoes the original command line in the generated header. When
	// empty the header is synthesized from the other options.
	Args []string
}

// Generate loads the single package matched by patterns (default ".") and
// renders case iterators for opts.Types. It returns generated file paths,
// relative to wd, mapped to gofmt-ed contents; writing them is the caller's
// decision. env becomes the build system's environment, nil meaning the
// current one. If any requested type fails validation, there is no output
// and the returned error joins every diagnosis.
func Generate(ctx context.Context, wd string, env []string, opts Options, patterns ...string) (map[string][]byte, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	return caseiterinternal.Main(ctx, wd, env, opts.Tags, opts.Tests, caseiterinternal.Options{
		Types:   opts.Types,
		Seq:     opts.Seq,
		OutFile: opts.OutFile,
		Args:    opts.Args,
	}, patterns)
}
