// SPDX-License-Identifier: MIT
// Package: orbweaver/symtab
//
// builder.go - the mutable label -> Symbol interning phase.
//
// AI-Hints (file):
//   - Intern is the only mutator; it is idempotent per distinct label.
//   - Finalize consumes the Builder; do not reuse a Builder after Finalize.

package symtab

// Builder accumulates a label -> Symbol mapping in first-insertion order.
// It is not safe for concurrent use - callers feed it from a single
// goroutine during the build-then-finalize phase.
type Builder struct {
	byLabel map[string]Symbol
	labels  []string // indexed by Symbol, same order as byLabel assignment
}

// NewBuilder returns an empty Builder ready to accept labels.
func NewBuilder() *Builder {
	return &Builder{byLabel: make(map[string]Symbol)}
}

// Intern returns the Symbol for label, allocating the next dense Symbol in
// sequence the first time a given (NFC-normalized) label is seen.
// Complexity: O(1) amortized (map lookup + occasional slice append).
func (b *Builder) Intern(label string) (Symbol, error) {
	norm := normalizeLabel(label)
	if sym, ok := b.byLabel[norm]; ok {
		return sym, nil
	}

	next := Symbol(len(b.labels))
	if next == SentinelSymbol {
		return 0, ErrSymbolSpaceExhausted
	}

	b.byLabel[norm] = next
	b.labels = append(b.labels, norm)

	return next, nil
}

// Len reports how many distinct labels have been interned so far.
func (b *Builder) Len() int { return len(b.labels) }

// Finalize consumes the Builder and returns an immutable Resolver whose
// Arena stores every interned label's bytes contiguously, in Symbol order.
// The Builder must not be used after calling Finalize.
//
// Complexity: O(total label bytes).
func (b *Builder) Finalize() *Resolver {
	total := 0
	for _, l := range b.labels {
		total += len(l)
	}

	arena := &Arena{
		buf:   make([]byte, 0, total),
		spans: make([]span, 0, len(b.labels)),
	}
	for _, l := range b.labels {
		off := uint32(len(arena.buf))
		arena.buf = append(arena.buf, l...)
		arena.spans = append(arena.spans, span{off: off, len: uint32(len(l))})
	}

	return &Resolver{
		arena:   arena,
		byLabel: b.byLabel,
	}
}
