// Package caseiteranalysis validates //go:generate caseiter directives
// without generating anything, so editors and CI surface broken enums at the
// declaration the generator itself would blame.
package caseiteranalysis

import (
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	caseiterinternal "github.com/ianbrault/case-iterable/internal/caseiter"
	"github.com/ianbrault/case-iterable/internal/codefmt"
)

// Analyzer validates the enums named by caseiter directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "caseiter",
	Doc:  "validate enums named by //go:generate caseiter directives",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	dirs := directives(pass)
	if len(dirs) == 0 {
		return nil, nil
	}

	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	// Each directive is validated on its own so a failure lands on the
	// directive that asked for the broken type.
	for _, d := range dirs {
		g, err := caseiterinternal.New(pkg, caseiterinternal.Options{Types: d.types, Seq: d.seq})
		if err != nil {
			return nil, err
		}

		if err := g.Build(); err != nil {
			report(pass, d, err)
		}
	}

	return nil, nil
}

// report unrolls joined errors and reports each at its source position,
// falling back to the directive for errors that have none.
func report(pass *analysis.Pass, d directive, err error) {
	errs := []error{err}
	for len(errs) != 0 {
		err := errs[0]
		errs = errs[1:]

		if codeErr, ok := err.(*codefmt.CodeError); ok {
			pos, end := codeErr.Pos(), codeErr.End()
			if !pos.IsValid() {
				pos, end = d.pos, token.NoPos
			}
			pass.Report(analysis.Diagnostic{
				Pos:     pos,
				End:     end,
				Message: codeErr.Unwrap().Error(),
			})
			continue
		}

		if u, ok := err.(interface{ Unwrap() []error }); ok {
			errs = append(errs, u.Unwrap()...)
			continue
		}

		pass.Report(analysis.Diagnostic{Pos: d.pos, Message: err.Error()})
	}
}
