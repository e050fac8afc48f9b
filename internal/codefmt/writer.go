package codefmt

import (
	"go/types"
	"io"
	"path"

	"golang.org/x/tools/go/packages"
)

// Writer is a writer for generated code. It collects the imports the code
// refers to so the caller can frame them into an import block.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
}

// NewWriter creates a new [Writer] for code generated into pkg.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf].
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return w.fmt.Fprintf(w.w, format, args...)
}

type Import struct {
	// The package to import.
	*types.Package

	// HasAlias indicates that the import has an alias.
	HasAlias bool
}

// Imports returns the imports collected by [Writer.Import].
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// Import adds an import for the package with the given path and alias. It
// returns the name of the imported package. The name might be different if it
// has tried to resolve name conflicts.
//
//	// iterName can be used to refer to the "iter" package without any name conflict.
//	iterName := w.Import("iter", "")
//	w.Printf("%s.Seq[int]", iterName)
//
// If name is empty, the name the target package already has in the loaded
// package is used, falling back to the last path segment.
func (w *Writer) Import(pkgPath, name string) string {
	var pkgName string
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == pkgPath {
			pkgName = imp.Name()
			break
		}
	}
	if pkgName == "" {
		pkgName = path.Base(pkgPath)
	}

	if name == "" {
		name = pkgName
	}
	pkg := types.NewPackage(pkgPath, name)

	for name := range DisambiguateName(name) {
		prev, ok := w.imports[name]
		if ok && prev.Path() == pkgPath {
			// Already imported with the same name.
			return name
		}
		if !ok && w.pkg.Types.Scope().Lookup(name) == nil {
			w.imports[name] = Import{Package: pkg, HasAlias: name != pkgName}
			pkg.SetName(name)
			return name
		}
	}

	panic("unreachable")
}
