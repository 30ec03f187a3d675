// Package symtab interns variable-length string labels into dense 32-bit
// symbols backed by a contiguous, immutable byte arena.
//
// Interning happens in two phases: a mutable Builder (label -> Symbol,
// first-insertion order, O(1) amortized) followed by a one-shot Finalize
// into an immutable Resolver (Symbol <-> label, O(1) lookups). Once
// finalized, a Resolver never mutates and may be shared by reference
// across any number of derived graphs.
//
//	b := symtab.NewBuilder()
//	a, _ := b.Intern("alpha")
//	c, _ := b.Intern("charlie")
//	r := b.Finalize()
//	r.Resolve(a) // "alpha", nil
package symtab
