package relation

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Relation is the successor relation over the cases of one enum. Each case
// maps to the case declared right after it; the last case maps to the empty
// string. Entries keep declaration order, so iterating the relation replays
// the enum top to bottom.
type Relation struct {
	next  *linkedhashmap.Map // key: case name, value: successor name or ""
	first string
}

// New builds the successor relation for the given case names in declaration
// order. The caller must have validated the enum already; an empty case list
// is a bug, not an input error.
func New(names []string) *Relation {
	if len(names) == 0 {
		panic("relation: no cases")
	}

	next := linkedhashmap.New()
	for i, name := range names {
		succ := ""
		if i+1 < len(names) {
			succ = names[i+1]
		}
		next.Put(name, succ)
	}

	return &Relation{next: next, first: names[0]}
}

// First returns the first declared case, where the iteration starts.
func (r *Relation) First() string { return r.first }

// Len returns the number of cases.
func (r *Relation) Len() int { return r.next.Size() }

// Next returns the successor of the named case. The last case has an empty
// successor. It reports false for a name outside the relation.
func (r *Relation) Next(name string) (string, bool) {
	succ, ok := r.next.Get(name)
	if !ok {
		return "", false
	}
	return succ.(string), true
}

// All iterates case and successor pairs in declaration order.
func (r *Relation) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for it := r.next.Iterator(); it.Next(); {
			if !yield(it.Key().(string), it.Value().(string)) {
				return
			}
		}
	}
}
