// Package caseitererrors defines the diagnostics caseiter reports when a type
// cannot be enumerated. Hosts of the generator (the CLI, the analyzer, or a
// program embedding the library) recover the structured diagnostic with
// errors.As and decide how to present it.
package caseitererrors

import (
	"errors"
	"fmt"
)

// Kind classifies why generation was refused.
type Kind int

const (
	// KindNotEnum reports that the requested type is not an enum: it is
	// missing, an alias, not a type at all, generic, or its underlying type
	// is not basic.
	KindNotEnum Kind = iota + 1

	// KindDuplicateCase reports a constant that repeats the value of an
	// earlier case. Such a constant is an alias for another tag, not a
	// distinct case, and the generated switch could not carry both.
	KindDuplicateCase

	// KindNoCases reports an enum type that declares no constants.
	KindNoCases
)

func (k Kind) String() string {
	switch k {
	case KindNotEnum:
		return "not an enum"
	case KindDuplicateCase:
		return "duplicate case"
	case KindNoCases:
		return "no cases"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a refused generation request. Type always names the requested
// type. Case and Prev are set for KindDuplicateCase; Reason carries the
// specific shape complaint for KindNotEnum.
type Error struct {
	Kind   Kind
	Type   string
	Case   string
	Prev   string
	Reason string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotEnum:
		if e.Reason == "" {
			return fmt.Sprintf("%s is not an enum", e.Type)
		}
		return fmt.Sprintf("%s is not an enum: %s", e.Type, e.Reason)
	case KindDuplicateCase:
		return fmt.Sprintf("constant %s duplicates the value of case %s", e.Case, e.Prev)
	case KindNoCases:
		return fmt.Sprintf("enum %s declares no constants", e.Type)
	}
	return fmt.Sprintf("cannot enumerate %s", e.Type)
}

// KindOf extracts the diagnostic kind from anywhere in err's chain. It
// returns 0 if the chain carries no caseiter diagnostic.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
