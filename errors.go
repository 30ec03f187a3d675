// SPDX-License-Identifier: MIT
// Package: orbweaver

package orbweaver

import (
	"github.com/katalvlaran/orbweaver/dgraph"
	"github.com/katalvlaran/orbweaver/nodevec"
	"github.com/katalvlaran/orbweaver/symtab"
)

// Symbol and NodeVec are re-exported as aliases of the subpackage types
// callers touch most, so they can be named from the module root.
type (
	Symbol  = symtab.Symbol
	NodeVec = nodevec.NodeVec
)

// Sentinel errors re-exported at the module root so callers that only
// import "github.com/katalvlaran/orbweaver" (for the root-level
// convenience helpers, once any exist) don't need to reach into the
// subpackages just to errors.Is against them. The subpackages remain the
// source of truth; these are aliases, not copies.
var (
	// ErrNodeNotExist indicates a label lookup against an unknown node.
	ErrNodeNotExist = dgraph.ErrNodeNotExist
	// ErrZeroSubsetLimit indicates a subset depth limit of 0.
	ErrZeroSubsetLimit = dgraph.ErrZeroSubsetLimit
	// ErrConcurrentQuery indicates overlapping queries on one DirectedGraph.
	ErrConcurrentQuery = dgraph.ErrConcurrentQuery
	// ErrGraphHasCycle indicates dag.Build/BuildAcyclic was attempted on a cyclic graph.
	ErrGraphHasCycle = dgraph.ErrGraphHasCycle
	// ErrSymbolSpaceExhausted indicates the interner ran out of Symbol values.
	ErrSymbolSpaceExhausted = symtab.ErrSymbolSpaceExhausted
)
