// SPDX-License-Identifier: MIT
// Package: orbweaver/nodeset
//
// nodemap.go - a dense vector of LazySet indexed directly by Symbol.

package nodeset

import "github.com/katalvlaran/orbweaver/symtab"

// NodeMap is a dense vector of LazySet, one slot per Symbol in
// [0, Len()). Its length always equals the owning interner's symbol
// count.
type NodeMap struct {
	slots []LazySet
}

// NewNodeMap allocates a NodeMap with n Uninitialized slots.
func NewNodeMap(n int) *NodeMap {
	return &NodeMap{slots: make([]LazySet, n)}
}

// Len reports the number of slots (equal to the interner's symbol count).
func (m *NodeMap) Len() int { return len(m.slots) }

// Get returns a read-only pointer to sym's slot. Index is direct (O(1));
// callers must ensure sym is in range.
func (m *NodeMap) Get(sym symtab.Symbol) *LazySet { return &m.slots[sym] }

// GetMut is an alias for Get: in Go there is only one pointer-returning
// accessor, so read and mutate go through the same method.
func (m *NodeMap) GetMut(sym symtab.Symbol) *LazySet { return &m.slots[sym] }

// ContainsKey reports whether sym's slot is Populated (not Empty, not
// Uninitialized) - i.e. sym is a known node with at least one neighbor in
// this map's direction.
func (m *NodeMap) ContainsKey(sym symtab.Symbol) bool {
	return m.slots[sym].IsPopulated()
}

// InitializedKeys enumerates, in ascending Symbol order, every symbol
// whose slot is Populated.
func (m *NodeMap) InitializedKeys() []symtab.Symbol {
	out := make([]symtab.Symbol, 0, len(m.slots))
	for i := range m.slots {
		if m.slots[i].IsPopulated() {
			out = append(out, symtab.Symbol(i))
		}
	}

	return out
}

// Clone returns a deep copy of m, used by topo.Sort (which must not
// mutate the source graph's maps).
func (m *NodeMap) Clone() *NodeMap {
	cp := &NodeMap{slots: make([]LazySet, len(m.slots))}
	for i := range m.slots {
		cp.slots[i] = m.slots[i].clone()
	}

	return cp
}
