// SPDX-License-Identifier: MIT
// Package: orbweaver/nodevec
//
// nodevec.go - NodeVec, a zero-copy batch-decode handle over an Arena.

package nodevec

import "github.com/katalvlaran/orbweaver/symtab"

// NodeVec is an ordered batch of Symbols paired with the Arena that can
// decode each one. It holds a shared reference to the Arena, so the
// decoded label bytes remain valid for NodeVec's own lifetime even after
// every other reference to the originating graph is dropped.
type NodeVec struct {
	arena *symtab.Arena
	syms  []symtab.Symbol
}

// New wraps syms with arena for decoding. It does not copy syms; callers
// must not mutate the slice afterward.
func New(arena *symtab.Arena, syms []symtab.Symbol) *NodeVec {
	return &NodeVec{arena: arena, syms: syms}
}

// ResolveMany batch-decodes syms against r into one NodeVec. It lives
// here rather than on symtab.Resolver to avoid a nodevec<->symtab import
// cycle (see symtab/resolver.go's AI-Hints).
func ResolveMany(r *symtab.Resolver, syms []symtab.Symbol) *NodeVec {
	return New(r.ArenaRef(), syms)
}

// Len reports how many symbols this NodeVec holds.
func (v *NodeVec) Len() int { return len(v.syms) }

// Symbols exposes the underlying dense symbols, in the order supplied at
// construction. The slice must not be mutated by the caller.
func (v *NodeVec) Symbols() []symtab.Symbol { return v.syms }

// At decodes the label at position i. Complexity: O(label length).
func (v *NodeVec) At(i int) string {
	return string(v.arena.Bytes(v.syms[i]))
}

// Strings decodes every element into a freshly-allocated []string. Use
// this at API boundaries that must hand off owned strings (e.g. JSON
// encoding); prefer ForEach/At on hot paths to avoid the extra allocation.
func (v *NodeVec) Strings() []string {
	out := make([]string, len(v.syms))
	for i := range v.syms {
		out[i] = v.At(i)
	}

	return out
}

// ForEach decodes and visits each label in order, stopping early if fn
// returns false. Unlike Strings it allocates no []string for callers that
// only need to iterate once; each label is still decoded into a new
// string, as with At.
func (v *NodeVec) ForEach(fn func(i int, label string) bool) {
	for i := range v.syms {
		if !fn(i, v.At(i)) {
			return
		}
	}
}
