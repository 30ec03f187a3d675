// SPDX-License-Identifier: MIT
// Package: orbweaver/symtab
//
// errors.go - sentinel errors for the interner.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites add context (e.g. the offending label) via fmt.Errorf's %w.

package symtab

import "errors"

// ErrLabelNotFound indicates Resolver.Get was called with a label that was
// never interned by the Builder this Resolver was finalized from.
var ErrLabelNotFound = errors.New("symtab: label not found")

// ErrUnknownSymbol indicates a Symbol was presented to a Resolver that did
// not issue it (out of the dense [0, N) range). Callers are expected to
// only pass Symbols obtained from this Resolver; the sentinel exists so
// implementations that choose to check rather than trust still have a
// stable error to return instead of panicking.
var ErrUnknownSymbol = errors.New("symtab: unknown symbol")

// ErrSymbolSpaceExhausted indicates interning one more distinct label would
// assign SentinelSymbol, which is reserved as the path-delimiter value.
// In practice this requires 2^32-1 distinct labels.
var ErrSymbolSpaceExhausted = errors.New("symtab: symbol space exhausted")
