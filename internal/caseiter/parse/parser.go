package parse

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/ianbrault/case-iterable/internal/typeinfo"
)

// Parser inspects a loaded package to validate enum types and to collect
// their constants in declaration order.
type Parser struct {
	pkg    *packages.Package
	consts *typeinfo.Lookup[*constBucket]
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser]. The package must carry names, types, type info,
// and syntax; a load mode that skips any of them is a caller bug.
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}

	p := &Parser{pkg: pkg, consts: typeinfo.NewLookup[*constBucket]()}
	p.collectConsts()
	return p, nil
}

// constBucket accumulates the constants declared with one named type.
type constBucket struct {
	consts []*types.Const
}

// collectConsts walks every const block of the package and buckets the
// declared constants by their named type. The walk follows the compiled file
// order and then source order within each file, which is the declaration
// order the generated code must reproduce. The type-checker's scope cannot
// provide this: its names are sorted.
func (p *Parser) collectConsts() {
	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}

			for _, spec := range gen.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for _, id := range vs.Names {
					if id.Name == "_" {
						continue
					}

					con, ok := p.pkg.TypesInfo.Defs[id].(*types.Const)
					if !ok {
						continue
					}

					info := typeinfo.TypeOf(con.Type())
					if !info.IsNamed() {
						continue
					}

					bucket, ok := p.consts.Get(info)
					if !ok {
						bucket = new(constBucket)
						p.consts.Put(info, bucket)
					}
					bucket.consts = append(bucket.consts, con)
				}
			}
		}
	}
}
