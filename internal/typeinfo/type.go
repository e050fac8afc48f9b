package typeinfo

import (
	"go/token"
	"go/types"
)

// Type describes a type information. It holds the parts of [types.Type] that
// matter when deciding whether a type can be enumerated: a defined (named)
// type whose underlying type is basic qualifies, everything else does not.
type Type struct {
	T types.Type

	Basic *types.Basic
	Named *types.Named
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool { return t.Basic != nil }
func (t Type) IsNamed() bool { return t.Named != nil }

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// TypeOf inspects the given type and returns a new [Type]. For a named type,
// the basic field reflects the underlying type, so an enum-shaped type
// reports both IsNamed and IsBasic.
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	default:
		return Type{T: t}
	}
}

// Underlying returns the underlying type.
func (t Type) Underlying() types.Type {
	return t.T.Underlying()
}

// Pos returns the position where the type is defined. It returns token.NoPos
// if the type is not a named type.
func (t Type) Pos() token.Pos {
	if t.IsNamed() {
		return t.Named.Obj().Pos()
	}
	return token.NoPos
}

// IsGeneric reports whether the type declares type parameters or is itself a
// type parameter.
func (t Type) IsGeneric() bool {
	switch tt := types.Unalias(t.T).(type) {
	case *types.Named:
		return tt.TypeParams().Len() != 0
	case *types.TypeParam:
		return true
	}
	return false
}
