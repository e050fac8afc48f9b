// Package astbuild provides small constructors for the go/ast nodes the
// generator emits, so the synthesizer composes trees instead of spelling out
// struct literals for every identifier, path, and pointer type.
//
// All constructors are purely constructive and never fail on well-formed
// input. Malformed input (an empty name, unparseable expression text) is a
// caller bug and panics.
package astbuild

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// Ident returns a name node. The text must be non-empty; whether it is a
// legal identifier in the target package is the caller's contract.
func Ident(name string) *ast.Ident {
	if name == "" {
		panic("astbuild: empty identifier")
	}
	return ast.NewIdent(name)
}

// Path chains identifiers into a qualified reference: Path("iter", "Seq")
// builds the selector iter.Seq, Path("Color") is just the identifier.
func Path(segments ...string) ast.Expr {
	if len(segments) == 0 {
		panic("astbuild: empty path")
	}

	var x ast.Expr = Ident(segments[0])
	for _, seg := range segments[1:] {
		x = &ast.SelectorExpr{X: x, Sel: Ident(seg)}
	}
	return x
}

// Generic instantiates x with type arguments: Generic(Path("iter", "Seq"),
// Ident("Color")) builds iter.Seq[Color].
func Generic(x ast.Expr, args ...ast.Expr) ast.Expr {
	switch len(args) {
	case 0:
		panic("astbuild: instantiation without type arguments")
	case 1:
		return &ast.IndexExpr{X: x, Index: args[0]}
	default:
		return &ast.IndexListExpr{X: x, Indices: args}
	}
}

// Optional returns the pointer form *T of t, the conventional representation
// of "present or absent" in generated declarations.
func Optional(t ast.Expr) ast.Expr {
	return &ast.StarExpr{X: t}
}

// Ref takes the address of x.
func Ref(x ast.Expr) ast.Expr {
	return &ast.UnaryExpr{Op: token.AND, X: x}
}

// Call applies fn to args.
func Call(fn ast.Expr, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Fun: fn, Args: args}
}

// Field builds a field for a struct type, parameter list, or receiver. With
// no names the field is anonymous.
func Field(t ast.Expr, names ...string) *ast.Field {
	f := &ast.Field{Type: t}
	for _, name := range names {
		f.Names = append(f.Names, Ident(name))
	}
	return f
}

// ExprFromText parses src as a single expression. It exists for the few
// spots where source text is more legible than a composed tree, such as
// composite literals.
func ExprFromText(src string) ast.Expr {
	x, err := parser.ParseExpr(src)
	if err != nil {
		panic(fmt.Sprintf("astbuild: cannot parse expression %q: %v", src, err))
	}
	return x
}
