package emit_test

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/ianbrault/case-iterable/internal/caseiter/emit"
	"github.com/ianbrault/case-iterable/internal/caseiter/parse"
	"github.com/ianbrault/case-iterable/internal/caseiter/relation"
	"github.com/ianbrault/case-iterable/internal/codefmt"
)

func load(t *testing.T, src string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "fixture.go", src, parser.AllErrors)
	require.NoError(t, err)

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	tpkg, err := (&types.Config{}).Check("example.com/fixture", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return &packages.Package{
		Name:      tpkg.Name(),
		PkgPath:   tpkg.Path(),
		Types:     tpkg,
		TypesInfo: info,
		Fset:      fset,
		Syntax:    []*ast.File{file},
	}
}

// generate runs the full bundle for one enum and returns the gofmt-ed result
// framed as a file, so the goldens below read like real generated output.
func generate(t *testing.T, src, name string, seq bool) string {
	t.Helper()

	pkg := load(t, src)
	p, err := parse.New(pkg)
	require.NoError(t, err)

	enum, err := p.Enum(name)
	require.NoError(t, err)

	ns := codefmt.NewNS(pkg.Types.Scope())
	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, pkg)

	b := emit.New(enum, relation.New(enum.CaseNames()), ns, seq)
	require.NoError(t, b.WriteCode(w))

	var file bytes.Buffer
	fmt.Fprintf(&file, "package %s\n\n", pkg.Name)
	for alias, imp := range w.Imports() {
		if imp.HasAlias {
			fmt.Fprintf(&file, "import %s %q\n", alias, imp.Path())
		} else {
			fmt.Fprintf(&file, "import %q\n", imp.Path())
		}
	}
	file.Write(buf.Bytes())

	code, err := format.Source(file.Bytes())
	require.NoError(t, err)
	return string(code)
}

const colorSrc = `
package fixture

type Color int

const (
	Red Color = iota
	Green
	Blue
)
`

func TestWriteCode(t *testing.T) {
	got := generate(t, colorSrc, "Color", false)

	assert.Equal(t, `package fixture

// Next returns the Color case declared right after c, or nil for the last case.
func (c Color) Next() *Color {
	switch c {
	case Red:
		next := Green
		return &next
	case Green:
		next := Blue
		return &next
	case Blue:
		return nil
	}
	return nil
}

// ColorIterator iterates the cases of Color in declaration order.
type ColorIterator struct {
	current *Color
}

// newColorIterator returns a ColorIterator positioned at from.
func newColorIterator(from Color) *ColorIterator {
	return &ColorIterator{current: &from}
}

// Next returns the current case and advances the iterator, or nil once every case is spent.
func (it *ColorIterator) Next() *Color {
	if it.current == nil {
		return nil
	}
	prev := it.current
	it.current = prev.Next()
	return prev
}

// AllColorCases returns an iterator over every case of Color in declaration order.
func AllColorCases() *ColorIterator {
	return newColorIterator(Red)
}
`, got)
}

func TestWriteCodeSeq(t *testing.T) {
	got := generate(t, colorSrc, "Color", true)

	// The range adapter pulls in the iter package.
	assert.Contains(t, got, "import \"iter\"\n")
	assert.Contains(t, got, `
// Seq adapts the iterator to a range-over-func sequence.
func (it *ColorIterator) Seq() iter.Seq[Color] {
	return func(yield func(Color) bool) {
		for v := it.Next(); v != nil; v = it.Next() {
			if !yield(*v) {
				return
			}
		}
	}
}
`)
}

func TestWriteCodeSingleCase(t *testing.T) {
	got := generate(t, `
package fixture

type Only int

const Sole Only = 0
`, "Only", false)

	// The sole case is terminal and still seeds the entry point.
	assert.Contains(t, got, "case Sole:\n\t\treturn nil\n")
	assert.Contains(t, got, "return newOnlyIterator(Sole)")
}

func TestWriteCodeUnexported(t *testing.T) {
	pkg := load(t, `
package fixture

type jobState int

const (
	pending jobState = iota
	running
	done
)
`)
	p, err := parse.New(pkg)
	require.NoError(t, err)
	enum, err := p.Enum("jobState")
	require.NoError(t, err)

	ns := codefmt.NewNS(pkg.Types.Scope())
	b := emit.New(enum, relation.New(enum.CaseNames()), ns, false)

	// Derived names inherit the enum's exportedness.
	assert.Equal(t, "jobStateIterator", b.IterName())
	assert.Equal(t, "allJobStateCases", b.AllName())
}

func TestWriteCodeDodgesCaseNames(t *testing.T) {
	got := generate(t, `
package fixture

type mode int

const (
	next mode = iota
	prev
	it
)
`, "mode", false)

	// Cases named like the generated locals push the locals to fresh
	// names instead of shadowing the constants.
	assert.Contains(t, got, "next2 := prev")
	assert.Contains(t, got, "prev2 := it2.current")
	assert.NotContains(t, got, "next := ")
}
