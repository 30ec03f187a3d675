// SPDX-License-Identifier: MIT
// Package: orbweaver/symtab
//
// symbol.go - the dense 32-bit node handle and its reserved sentinel.

package symtab

import "strconv"

// Symbol is a dense, opaque 32-bit handle assigned to an interned label in
// first-insertion order starting at 0. Symbols are comparable, orderable,
// and hashable so they can be used directly as map keys or slice indices.
type Symbol uint32

// SentinelSymbol is reserved as a path delimiter in flattened path buffers
// (see dgraph's FindAllPaths). No label may ever be assigned this value;
// Builder.Intern returns ErrSymbolSpaceExhausted before it would.
const SentinelSymbol Symbol = ^Symbol(0) // 2^32 - 1

// IsSentinel reports whether s is the reserved delimiter value.
func (s Symbol) IsSentinel() bool { return s == SentinelSymbol }

// ToUsize returns s widened to int, for use as a slice index.
// Complexity: O(1).
func (s Symbol) ToUsize() int { return int(s) }

// String renders the symbol's numeric value for diagnostics. It never
// attempts to resolve the underlying label - callers needing the label
// must go through a Resolver.
func (s Symbol) String() string {
	if s.IsSentinel() {
		return "Symbol(sentinel)"
	}

	return "Symbol(" + strconv.FormatUint(uint64(s), 10) + ")"
}
