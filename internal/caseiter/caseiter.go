package caseiterinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"maps"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/ianbrault/case-iterable/internal/caseiter/emit"
	"github.com/ianbrault/case-iterable/internal/caseiter/parse"
	"github.com/ianbrault/case-iterable/internal/caseiter/relation"
	"github.com/ianbrault/case-iterable/internal/codefmt"
	"github.com/ianbrault/case-iterable/internal/words"
)

// Options configures one generation run over one package.
type Options struct {
	// Types names the enums to generate iterators for. The output keeps
	// this order.
	Types []string

	// Seq adds a range-over-func adapter to every iterator.
	Seq bool

	// OutFile collects every bundle into a single file instead of one
	// <type>_caseiter.go per enum.
	OutFile string

	// Args echoes the command line into the generated header. When empty,
	// the header is synthesized from the options.
	Args []string
}

// Generator generates case iterators for the enums of one package. Call
// [Generator.Build] and then [Generator.Generate]. Every input error surfaces
// in Build; once it succeeds, Generate fails only if the rendered code does
// not format, which means a generator bug rather than an input problem.
type Generator struct {
	p    *parse.Parser
	ns   codefmt.NS
	opts Options

	bundles []*emit.Bundle
}

// New creates a new [Generator] for the given package. The package must have
// its Syntax, Types, and TypesInfo.
func New(pkg *packages.Package, opts Options) (*Generator, error) {
	if len(opts.Types) == 0 {
		return nil, fmt.Errorf("no types requested")
	}

	p, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	return &Generator{
		p:    p,
		ns:   codefmt.NewNS(pkg.Types.Scope()),
		opts: opts,
	}, nil
}

// Build validates every requested type and prepares its bundle. Errors for
// all types accumulate, so one broken enum does not hide another. A type
// requested twice builds once.
func (g *Generator) Build() error {
	var errs error
	seen := make(map[string]bool, len(g.opts.Types))
	for _, name := range g.opts.Types {
		if seen[name] {
			continue
		}
		seen[name] = true

		enum, err := g.p.Enum(name)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		// Each bundle draws local names from its own namespace so the
		// same locals reappear across bundles deterministically.
		ns := maps.Clone(g.ns)
		g.bundles = append(g.bundles, emit.New(enum, relation.New(enum.CaseNames()), ns, g.opts.Seq))
	}
	return errs
}

// Generate renders the prepared bundles. It returns file names relative to
// the package directory mapped to gofmt-ed contents. It must be called after
// [Generator.Build] succeeds.
func (g *Generator) Generate() (map[string][]byte, error) {
	if len(g.bundles) == 0 {
		return nil, nil
	}

	outs := make(map[string][]byte)

	if g.opts.OutFile != "" {
		var buf bytes.Buffer
		w := codefmt.NewWriter(&buf, g.p.Pkg())
		for _, b := range g.bundles {
			if err := b.WriteCode(w); err != nil {
				return nil, err
			}
		}

		code, err := g.frame(w, &buf)
		if err != nil {
			return nil, err
		}
		outs[g.opts.OutFile] = code
		return outs, nil
	}

	for _, b := range g.bundles {
		var buf bytes.Buffer
		w := codefmt.NewWriter(&buf, g.p.Pkg())
		if err := b.WriteCode(w); err != nil {
			return nil, err
		}

		code, err := g.frame(w, &buf)
		if err != nil {
			return nil, err
		}
		outs[words.Snake(b.EnumName())+"_caseiter.go"] = code
	}
	return outs, nil
}

// frame wraps the generated declarations with the header comment, the
// package clause, and the imports collected by the writer, then gofmts the
// result. gofmt also canonicalizes the import order, so the map iteration
// below needs no sorting.
func (g *Generator) frame(w *codefmt.Writer, body *bytes.Buffer) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %q; DO NOT EDIT.\n\n", "caseiter "+g.argsText())
	fmt.Fprintf(&buf, "package %s\n\n", g.p.Pkg().Name)

	if len(w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	_, _ = io.Copy(&buf, body)

	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return code, nil
}

func (g *Generator) argsText() string {
	if len(g.opts.Args) != 0 {
		return strings.Join(g.opts.Args, " ")
	}

	args := []string{"-type=" + strings.Join(g.opts.Types, ",")}
	if g.opts.Seq {
		args = append(args, "-seq")
	}
	if g.opts.OutFile != "" {
		args = append(args, "-output="+g.opts.OutFile)
	}
	return strings.Join(args, " ")
}
