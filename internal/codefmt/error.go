package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError indicates where the error occurred in user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	if !e.pos.IsValid() {
		return e.err.Error()
	}

	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), e.err.Error())
}

// Errorf formats an error message. The error will indicate the position in the
// source code if the position is valid.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	// Prevent wrapping an error in args. Use Wrap to attach a position to an
	// existing error instead.
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error; use Wrap")
		}
	}

	args = f.wrapPrintfArgs(args)
	err := fmt.Errorf(format, args...)
	return &CodeError{err, posOf(poser), endOf(poser), f.Fset}
}

// Wrap attaches a source position to err. Unlike Errorf, the wrapped error
// stays reachable through errors.Is and errors.As, so typed diagnostics
// survive the positioning layer.
func (f Formatter) Wrap(poser Poser, err error) error {
	if err == nil {
		return nil
	}
	return &CodeError{err, posOf(poser), endOf(poser), f.Fset}
}

func posOf(poser Poser) token.Pos {
	if poser == nil {
		return token.NoPos
	}
	return poser.Pos()
}

func endOf(poser Poser) token.Pos {
	if ender, ok := poser.(Ender); ok {
		return ender.End()
	}
	return token.NoPos
}
