// SPDX-License-Identifier: MIT
// Package: orbweaver/dgraph
//
// errors.go - sentinel errors for the builder and query engine.

package dgraph

import (
	"errors"

	"github.com/katalvlaran/orbweaver/topo"
)

// ErrNodeNotExist indicates a label lookup against a node the graph has
// never seen. Batch operations fail on the first such label and return
// this error (wrapped with the offending label by the call site) rather
// than a per-item error list.
var ErrNodeNotExist = errors.New("dgraph: node does not exist")

// ErrZeroSubsetLimit indicates SubsetWithLimit/SubsetMultiWithLimit was
// called with k == 0, which is always rejected outright.
var ErrZeroSubsetLimit = errors.New("dgraph: subset depth limit must be >= 1")

// ErrConcurrentQuery indicates a second query was attempted against a
// DirectedGraph while one was already in flight against its scratch
// buffers - the runtime-check half of the single-borrow invariant (the
// other half being "don't do that" for single-threaded callers).
var ErrConcurrentQuery = errors.New("dgraph: concurrent query on shared scratch buffers")

// ErrGraphHasCycle is topo.ErrGraphHasCycle re-exported under this
// package so callers of TopoSort (and, transitively, dag.Build) need not
// import topo just to check errors.Is against it.
var ErrGraphHasCycle = topo.ErrGraphHasCycle
