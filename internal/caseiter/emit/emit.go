package emit

import (
	"go/ast"
	"go/printer"
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/ianbrault/case-iterable/internal/caseiter/parse"
	"github.com/ianbrault/case-iterable/internal/caseiter/relation"
	"github.com/ianbrault/case-iterable/internal/codefmt"
)

// Bundle is the set of declarations generated for one enum, in this order:
// the successor method on the enum, the iterator type, its constructor and
// advance method, the all-cases entry point, and optionally the range
// adapter.
type Bundle struct {
	enum parse.Enum
	rel  *relation.Relation
	seq  bool

	iterName string
	ctorName string
	allName  string

	recv  string // receiver of the successor method
	it    string // receiver of the iterator methods
	from  string
	next  string
	prev  string
	yield string
	v     string
}

// New derives every name the bundle will declare. Top-level names follow the
// naming contract of the generator; local names are drawn from ns, which
// carries the package scope, so a case named next or prev cannot be shadowed
// by the generated locals.
func New(enum parse.Enum, rel *relation.Relation, ns codefmt.NS, seq bool) *Bundle {
	name := enum.Name()

	b := &Bundle{enum: enum, rel: rel, seq: seq}
	b.iterName = name + "Iterator"
	b.ctorName = "new" + codefmt.NormalizeName(name) + "Iterator"
	if ast.IsExported(name) {
		b.allName = "All" + name + "Cases"
	} else {
		b.allName = "all" + codefmt.NormalizeName(name) + "Cases"
	}

	ns.Reserve(b.iterName)
	ns.Reserve(b.ctorName)
	ns.Reserve(b.allName)

	b.recv = ns.Name(receiverName(name))
	b.it = ns.Name("it")
	b.from = ns.Name("from")
	b.next = ns.Name("next")
	b.prev = ns.Name("prev")
	if seq {
		b.yield = ns.Name("yield")
		b.v = ns.Name("v")
	}
	return b
}

// EnumName returns the name of the enum the bundle generates for.
func (b *Bundle) EnumName() string { return b.enum.Name() }

// IterName returns the name of the generated iterator type. It inherits the
// exportedness of the enum.
func (b *Bundle) IterName() string { return b.iterName }

// AllName returns the name of the generated all-cases entry point.
func (b *Bundle) AllName() string { return b.allName }

// receiverName picks the conventional receiver for a type: its first letter,
// lowercased.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	r = unicode.ToLower(r)
	if !unicode.IsLetter(r) {
		return "x"
	}
	return string(r)
}

// WriteCode prints the bundle into w, each declaration under a one-line doc
// comment. The output has no package clause; framing is the caller's job.
func (b *Bundle) WriteCode(w *codefmt.Writer) error {
	type doced struct {
		doc  string
		decl ast.Decl
	}

	typeName := b.enum.Name()
	decls := []doced{
		{
			doc:  "Next returns the " + typeName + " case declared right after " + b.recv + ", or nil for the last case.",
			decl: b.successorDecl(),
		},
		{
			doc:  b.iterName + " iterates the cases of " + typeName + " in declaration order.",
			decl: b.carrierDecl(),
		},
		{
			doc:  b.ctorName + " returns a " + b.iterName + " positioned at " + b.from + ".",
			decl: b.ctorDecl(),
		},
		{
			doc:  "Next returns the current case and advances the iterator, or nil once every case is spent.",
			decl: b.advanceDecl(),
		},
		{
			doc:  b.allName + " returns an iterator over every case of " + typeName + " in declaration order.",
			decl: b.entryDecl(),
		},
	}
	if b.seq {
		iterPkg := w.Import("iter", "")
		decls = append(decls, doced{
			doc:  "Seq adapts the iterator to a range-over-func sequence.",
			decl: b.seqDecl(iterPkg),
		})
	}

	fset := token.NewFileSet()
	for _, d := range decls {
		if _, err := w.Printf("// %s\n", d.doc); err != nil {
			return err
		}
		if err := printer.Fprint(w, fset, d.decl); err != nil {
			return err
		}
		if _, err := w.Printf("\n\n"); err != nil {
			return err
		}
	}
	return nil
}
