package typeinfo

import (
	"iter"

	"golang.org/x/tools/go/types/typeutil"
)

// Lookup indexes values by type identity, so two [types.Type] values that are
// identical in the go/types sense share one slot.
type Lookup[T any] struct {
	m *typeutil.Map
}

// NewLookup creates a new [Lookup].
func NewLookup[T any]() *Lookup[T] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Lookup[T]{m}
}

// Put stores a value for the type. It reports false and keeps the old value
// if the type already has one.
func (l *Lookup[T]) Put(t Type, v T) bool {
	if _, ok := l.m.At(t.Type()).(T); ok {
		return false
	}
	l.m.Set(t.Type(), v)
	return true
}

// Get finds the value stored for the type.
func (l *Lookup[T]) Get(t Type) (T, bool) {
	if l == nil {
		return *new(T), false
	}

	v, ok := l.m.At(t.Type()).(T)
	if !ok {
		return *new(T), false
	}
	return v, true
}

// Range iterates all stored values.
func (l *Lookup[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range l.m.Keys() {
			v, ok := l.m.At(t).(T)
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
