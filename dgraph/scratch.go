// SPDX-License-Identifier: MIT
// Package: orbweaver/dgraph
//
// scratch.go - the per-graph owned, reusable typed buffers query methods
// borrow, plus the single-borrow guard that backs ErrConcurrentQuery.
//
// AI-Hints (file):
//   - Every query method that uses these buffers calls borrow() first and
//     defer release()s it; queries that use none of them do not borrow.
//   - Buffers are cleared (len reset to 0) on borrow, not on release, so
//     their backing arrays stay allocated for the next call.

package dgraph

import (
	"sync"

	"github.com/katalvlaran/orbweaver/symtab"
)

// pairSym is a (child, parent) tuple used by FindPath's backtrace log.
type pairSym struct {
	a, b symtab.Symbol
}

// pairIdx is a (start, end) offset pair into a flattened path buffer, used
// by FindAllPaths's work queue.
type pairIdx struct {
	start, end int
}

// scratch bundles the reusable typed buffers a DirectedGraph owns: three
// symbol vectors, one pair-of-symbols vector, one symbol FIFO, one symbol
// set, and one index-pair FIFO. A FIFO and a vector are both backed by the
// same []T here, reused for whichever role a given query needs.
type scratch struct {
	mu sync.Mutex

	symA, symB, symC []symtab.Symbol
	pairs            []pairSym
	fifo             []symtab.Symbol
	idxFifo          []pairIdx
	visited          map[symtab.Symbol]struct{}
}

func newScratch() *scratch {
	return &scratch{visited: make(map[symtab.Symbol]struct{})}
}

// borrow acquires exclusive access to the scratch buffers for the
// duration of one query and clears them. It returns ErrConcurrentQuery
// instead of blocking: a single DirectedGraph instance must not have two
// concurrent queries in flight.
func (s *scratch) borrow() (func(), error) {
	if !s.mu.TryLock() {
		return nil, ErrConcurrentQuery
	}
	s.symA = s.symA[:0]
	s.symB = s.symB[:0]
	s.symC = s.symC[:0]
	s.pairs = s.pairs[:0]
	s.fifo = s.fifo[:0]
	s.idxFifo = s.idxFifo[:0]
	for k := range s.visited {
		delete(s.visited, k)
	}

	return s.mu.Unlock, nil
}
