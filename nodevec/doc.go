// SPDX-License-Identifier: MIT
// Package: orbweaver/nodevec
//
// Package nodevec provides NodeVec, an owned handle over a batch of
// decoded labels that shares a symtab.Arena's backing storage instead of
// copying it.
//
// Returning []string directly from a batch decode would force an
// allocation per label on every query. NodeVec instead holds the Arena by
// reference plus the resolved Symbols, decoding lazily and on demand, so
// results can be produced cheaply and still outlive any transient graph
// borrow.
package nodevec
