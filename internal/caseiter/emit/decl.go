package emit

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/ianbrault/case-iterable/internal/astbuild"
)

// successorDecl builds the successor query on the enum:
//
//	func (c Color) Next() *Color {
//		switch c {
//		case Red:
//			next := Green
//			return &next
//		case Blue:
//			return nil
//		}
//		return nil
//	}
//
// Constants are not addressable, so non-terminal arms copy the successor
// into a local before taking its address.
func (b *Bundle) successorDecl() ast.Decl {
	typeName := b.enum.Name()

	var arms []ast.Stmt
	for name, succ := range b.rel.All() {
		arm := &ast.CaseClause{List: []ast.Expr{astbuild.Ident(name)}}
		if succ == "" {
			arm.Body = []ast.Stmt{returnExpr(astbuild.Ident("nil"))}
		} else {
			arm.Body = []ast.Stmt{
				define(b.next, astbuild.Ident(succ)),
				returnExpr(astbuild.Ref(astbuild.Ident(b.next))),
			}
		}
		arms = append(arms, arm)
	}

	return &ast.FuncDecl{
		Recv: fields(astbuild.Field(astbuild.Ident(typeName), b.recv)),
		Name: astbuild.Ident("Next"),
		Type: funcType(nil, astbuild.Field(astbuild.Optional(astbuild.Ident(typeName)))),
		Body: block(
			&ast.SwitchStmt{
				Tag:  astbuild.Ident(b.recv),
				Body: block(arms...),
			},
			returnExpr(astbuild.Ident("nil")),
		),
	}
}

// carrierDecl builds the iterator type:
//
//	type ColorIterator struct {
//		current *Color
//	}
//
// A nil current marks the iterator exhausted.
func (b *Bundle) carrierDecl() ast.Decl {
	return &ast.GenDecl{
		Tok: token.TYPE,
		Specs: []ast.Spec{&ast.TypeSpec{
			Name: astbuild.Ident(b.iterName),
			Type: &ast.StructType{
				Fields: fields(astbuild.Field(astbuild.Optional(astbuild.Ident(b.enum.Name())), "current")),
			},
		}},
	}
}

// ctorDecl builds the iterator constructor:
//
//	func newColorIterator(from Color) *ColorIterator {
//		return &ColorIterator{current: &from}
//	}
//
// The parameter is addressable, so its address seeds the iterator directly.
func (b *Bundle) ctorDecl() ast.Decl {
	return &ast.FuncDecl{
		Name: astbuild.Ident(b.ctorName),
		Type: funcType(
			fields(astbuild.Field(astbuild.Ident(b.enum.Name()), b.from)),
			astbuild.Field(astbuild.Optional(astbuild.Ident(b.iterName))),
		),
		Body: block(returnExpr(astbuild.ExprFromText(
			fmt.Sprintf("&%s{current: &%s}", b.iterName, b.from),
		))),
	}
}

// advanceDecl builds the advance method:
//
//	func (it *ColorIterator) Next() *Color {
//		if it.current == nil {
//			return nil
//		}
//		prev := it.current
//		it.current = prev.Next()
//		return prev
//	}
//
// Advancing swaps the successor in and yields the previous position, so an
// exhausted iterator keeps returning nil.
func (b *Bundle) advanceDecl() ast.Decl {
	current := func() ast.Expr {
		return &ast.SelectorExpr{X: astbuild.Ident(b.it), Sel: astbuild.Ident("current")}
	}

	return &ast.FuncDecl{
		Recv: fields(astbuild.Field(astbuild.Optional(astbuild.Ident(b.iterName)), b.it)),
		Name: astbuild.Ident("Next"),
		Type: funcType(nil, astbuild.Field(astbuild.Optional(astbuild.Ident(b.enum.Name())))),
		Body: block(
			&ast.IfStmt{
				Cond: &ast.BinaryExpr{X: current(), Op: token.EQL, Y: astbuild.Ident("nil")},
				Body: block(returnExpr(astbuild.Ident("nil"))),
			},
			define(b.prev, current()),
			assign(current(), astbuild.Call(astbuild.Path(b.prev, "Next"))),
			returnExpr(astbuild.Ident(b.prev)),
		),
	}
}

// entryDecl builds the all-cases entry point:
//
//	func AllColorCases() *ColorIterator {
//		return newColorIterator(Red)
//	}
func (b *Bundle) entryDecl() ast.Decl {
	return &ast.FuncDecl{
		Name: astbuild.Ident(b.allName),
		Type: funcType(nil, astbuild.Field(astbuild.Optional(astbuild.Ident(b.iterName)))),
		Body: block(returnExpr(
			astbuild.Call(astbuild.Ident(b.ctorName), astbuild.Ident(b.rel.First())),
		)),
	}
}

// seqDecl builds the range adapter:
//
//	func (it *ColorIterator) Seq() iter.Seq[Color] {
//		return func(yield func(Color) bool) {
//			for v := it.Next(); v != nil; v = it.Next() {
//				if !yield(*v) {
//					return
//				}
//			}
//		}
//	}
func (b *Bundle) seqDecl(iterPkg string) ast.Decl {
	typeName := b.enum.Name()
	nextCall := func() ast.Expr { return astbuild.Call(astbuild.Path(b.it, "Next")) }

	loop := &ast.ForStmt{
		Init: define(b.v, nextCall()),
		Cond: &ast.BinaryExpr{X: astbuild.Ident(b.v), Op: token.NEQ, Y: astbuild.Ident("nil")},
		Post: assign(astbuild.Ident(b.v), nextCall()),
		Body: block(&ast.IfStmt{
			Cond: &ast.UnaryExpr{
				Op: token.NOT,
				X:  astbuild.Call(astbuild.Ident(b.yield), deref(astbuild.Ident(b.v))),
			},
			Body: block(returnExpr()),
		}),
	}

	yieldType := funcType(
		fields(astbuild.Field(astbuild.Ident(typeName))),
		astbuild.Field(astbuild.Ident("bool")),
	)
	fn := &ast.FuncLit{
		Type: funcType(fields(astbuild.Field(yieldType, b.yield))),
		Body: block(loop),
	}

	return &ast.FuncDecl{
		Recv: fields(astbuild.Field(astbuild.Optional(astbuild.Ident(b.iterName)), b.it)),
		Name: astbuild.Ident("Seq"),
		Type: funcType(nil, astbuild.Field(astbuild.Generic(astbuild.Path(iterPkg, "Seq"), astbuild.Ident(typeName)))),
		Body: block(returnExpr(fn)),
	}
}

func fields(list ...*ast.Field) *ast.FieldList {
	return &ast.FieldList{List: list}
}

func funcType(params *ast.FieldList, results ...*ast.Field) *ast.FuncType {
	t := &ast.FuncType{Params: params}
	if t.Params == nil {
		t.Params = &ast.FieldList{}
	}
	if len(results) != 0 {
		t.Results = &ast.FieldList{List: results}
	}
	return t
}

func block(stmts ...ast.Stmt) *ast.BlockStmt {
	return &ast.BlockStmt{List: stmts}
}

func returnExpr(results ...ast.Expr) *ast.ReturnStmt {
	return &ast.ReturnStmt{Results: results}
}

func define(name string, value ast.Expr) *ast.AssignStmt {
	return &ast.AssignStmt{
		Lhs: []ast.Expr{astbuild.Ident(name)},
		Tok: token.DEFINE,
		Rhs: []ast.Expr{value},
	}
}

func assign(lhs, rhs ast.Expr) *ast.AssignStmt {
	return &ast.AssignStmt{
		Lhs: []ast.Expr{lhs},
		Tok: token.ASSIGN,
		Rhs: []ast.Expr{rhs},
	}
}

func deref(x ast.Expr) ast.Expr {
	return &ast.StarExpr{X: x}
}
