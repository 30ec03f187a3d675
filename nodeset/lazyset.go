// SPDX-License-Identifier: MIT
// Package: orbweaver/nodeset
//
// lazyset.go - the three-state adjacency slot.

package nodeset

import "github.com/katalvlaran/orbweaver/symtab"

// state is the internal tag of a LazySet.
type state uint8

const (
	stateUninit state = iota
	stateEmpty
	statePopulated
)

// LazySet is a tagged union of {Uninitialized, Empty, Populated(set)}.
// The zero value is Uninitialized.
type LazySet struct {
	st  state
	set map[symtab.Symbol]struct{}
}

// IsUninitialized reports whether this slot has never been touched - i.e.
// the owning symbol is not a known node in this map's direction.
func (l *LazySet) IsUninitialized() bool { return l.st == stateUninit }

// IsEmpty reports whether this slot is a known node with no neighbors.
func (l *LazySet) IsEmpty() bool { return l.st == stateEmpty }

// IsPopulated reports whether this slot is a known node with at least one
// neighbor.
func (l *LazySet) IsPopulated() bool { return l.st == statePopulated }

// OrInit transitions Uninitialized -> Populated(empty set) if necessary,
// and returns the slot's inner set for mutation. Calling OrInit on an
// already-Empty or already-Populated slot is also valid: an Empty slot
// promotes to Populated(empty set) since it is about to receive a member.
func (l *LazySet) OrInit() map[symtab.Symbol]struct{} {
	if l.set == nil {
		l.set = make(map[symtab.Symbol]struct{})
	}
	if l.st != statePopulated {
		l.st = statePopulated
	}

	return l.set
}

// IntoEmpty transitions Uninitialized -> Empty. It is a no-op if the slot
// is already Empty or Populated (demoting a Populated slot would violate
// the "Populated has >=1 member" invariant, so this never downgrades).
func (l *LazySet) IntoEmpty() {
	if l.st == stateUninit {
		l.st = stateEmpty
	}
}

// Contains reports whether sym is a member of this slot's set. Always
// false for Uninitialized or Empty slots.
func (l *LazySet) Contains(sym symtab.Symbol) bool {
	if l.st != statePopulated {
		return false
	}
	_, ok := l.set[sym]

	return ok
}

// Len reports the number of members, 0 for Uninitialized/Empty slots.
func (l *LazySet) Len() int {
	if l.st != statePopulated {
		return 0
	}

	return len(l.set)
}

// Insert adds sym to the slot, promoting Uninitialized/Empty to Populated
// as needed. Returns true iff sym was not already present (a true
// insertion) - dgraph's builder uses this to maintain the edge count.
func (l *LazySet) Insert(sym symtab.Symbol) bool {
	set := l.OrInit()
	if _, exists := set[sym]; exists {
		return false
	}
	set[sym] = struct{}{}

	return true
}

// Remove deletes sym from the slot if present, demoting Populated -> Empty
// once the last member is gone. Used by topo.Sort's working copy of the
// adjacency maps; never called on a DirectedGraph's own maps (which are
// immutable post-build). Returns true iff sym was present.
func (l *LazySet) Remove(sym symtab.Symbol) bool {
	if l.st != statePopulated {
		return false
	}
	if _, ok := l.set[sym]; !ok {
		return false
	}
	delete(l.set, sym)
	if len(l.set) == 0 {
		l.st = stateEmpty
	}

	return true
}

// Members returns the slot's members in unspecified (map iteration) order.
// Neighbor order is never part of the contract; callers that need a
// stable order must sort.
func (l *LazySet) Members() []symtab.Symbol {
	if l.st != statePopulated {
		return nil
	}
	out := make([]symtab.Symbol, 0, len(l.set))
	for s := range l.set {
		out = append(out, s)
	}

	return out
}

// clone returns a deep copy of l, used by NodeMap.Clone so topo's Kahn
// sweep does not mutate the source graph's maps.
func (l *LazySet) clone() LazySet {
	if l.st != statePopulated {
		return LazySet{st: l.st}
	}
	cp := make(map[symtab.Symbol]struct{}, len(l.set))
	for s := range l.set {
		cp[s] = struct{}{}
	}

	return LazySet{st: statePopulated, set: cp}
}
