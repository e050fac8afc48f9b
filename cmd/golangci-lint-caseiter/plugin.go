// golangcilintcaseiter package provides a plugin for golangci-lint to
// integrate the caseiter analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-caseiter binary that lints
// //go:generate caseiter directives along with your other linters.
package golangcilintcaseiter

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/ianbrault/case-iterable/pkg/caseiteranalysis"
)

func init() {
	register.Plugin("caseiter", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return CaseiterLinter{}, nil
}

type CaseiterLinter struct{}

func (CaseiterLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{caseiteranalysis.Analyzer}, nil
}

func (CaseiterLinter) GetLoadMode() string {
	// The analyzer resolves the types the directives name, so syntax
	// alone is not enough.
	return register.LoadModeTypesInfo
}
