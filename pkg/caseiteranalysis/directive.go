package caseiteranalysis

import (
	"go/ast"
	"go/token"
	"path"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// directive is one //go:generate line that invokes caseiter.
type directive struct {
	pos   token.Pos
	types []string
	seq   bool
}

// directives collects caseiter directives from every file of the pass, in
// file and then source order.
func directives(pass *analysis.Pass) []directive {
	var dirs []directive
	for _, file := range pass.Files {
		for _, group := range file.Comments {
			for _, c := range group.List {
				if d, ok := parseDirective(c); ok {
					dirs = append(dirs, d)
				}
			}
		}
	}
	return dirs
}

// parseDirective recognizes a go:generate comment whose command runs
// caseiter, directly or behind "go run", and extracts the -type list and the
// -seq switch. A caseiter invocation without types is not a directive; the
// command itself rejects it at generation time.
func parseDirective(c *ast.Comment) (directive, bool) {
	text, ok := strings.CutPrefix(c.Text, "//go:generate ")
	if !ok {
		return directive{}, false
	}

	fields := strings.Fields(text)
	cmd := -1
	for i, f := range fields {
		if isCaseiterCmd(f) {
			cmd = i
			break
		}
	}
	if cmd < 0 {
		return directive{}, false
	}

	d := directive{pos: c.Pos()}
	args := fields[cmd+1:]
	for i := 0; i < len(args); i++ {
		arg := strings.TrimLeft(args[i], "-")
		switch {
		case strings.HasPrefix(arg, "type="):
			d.types = append(d.types, splitTypes(arg[len("type="):])...)
		case arg == "type" && i+1 < len(args):
			i++
			d.types = append(d.types, splitTypes(args[i])...)
		case arg == "seq":
			d.seq = true
		}
	}

	if len(d.types) == 0 {
		return directive{}, false
	}
	return d, true
}

// isCaseiterCmd reports whether the field names the caseiter command: bare,
// as an import path, or with a module version suffix.
func isCaseiterCmd(field string) bool {
	base := path.Base(field)
	if at := strings.IndexByte(base, '@'); at >= 0 {
		base = base[:at]
	}
	return base == "caseiter"
}

func splitTypes(list string) []string {
	var types []string
	for _, t := range strings.Split(list, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}
