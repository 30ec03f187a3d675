// SPDX-License-Identifier: MIT
// Package: orbweaver/dgraph
//
// graph.go - the immutable DirectedGraph type and its read-only facade.
//
// Invariants, maintained entirely by GraphBuilder.BuildDirected and never
// by any method in this file:
//   - |edges| equals the number of distinct (parent, child) pairs fed to
//     the builder.
//   - For every symbol n that appears as a parent or child of any edge,
//     both childrenMap[n] and parentMap[n] are non-Uninitialized.
//   - n in roots  <=> parentMap[n]  = Empty.
//   - n in leaves <=> childrenMap[n] = Empty.
//   - roots, leaves, nodes are sorted ascending, no duplicates.
//   - (p, c) in edges <=> c in childrenMap[p].set <=> p in parentMap[c].set.
package dgraph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/orbweaver/nodeset"
	"github.com/katalvlaran/orbweaver/symtab"
)

// DirectedGraph is an immutable labeled directed graph: a shared Resolver,
// child/parent NodeMaps, sorted+deduped roots/leaves/nodes, the total edge
// count, and a bag of per-graph scratch buffers (never shared across
// graphs - see Subset, which always allocates its own).
//
// DirectedGraph is immutable after construction; the only mutable state is
// the scratch buffers, restricted to single-flight use per instance
// (enforced by *scratch.borrow).
type DirectedGraph struct {
	resolver *symtab.Resolver

	childrenMap *nodeset.NodeMap
	parentMap   *nodeset.NodeMap

	roots  []symtab.Symbol
	leaves []symtab.Symbol
	nodes  []symtab.Symbol

	edgeCount int

	scr *scratch
}

// Resolver exposes the shared Resolver backing this graph's symbols.
// Subset reuses it verbatim (see queries_subset.go) so symbol identity is
// preserved across the original and any derived graph.
func (g *DirectedGraph) Resolver() *symtab.Resolver { return g.resolver }

// Nodes decodes the sorted, deduped set of every node participating in at
// least one edge.
func (g *DirectedGraph) Nodes() []string { return decodeAll(g.resolver, g.nodes) }

// Len reports the number of nodes.
func (g *DirectedGraph) Len() int { return len(g.nodes) }

// IsEmpty reports whether the graph has zero nodes.
func (g *DirectedGraph) IsEmpty() bool { return len(g.nodes) == 0 }

// EdgeCount reports the total number of distinct (parent, child) pairs
// this graph was built from - an O(1) accessor backed by a separately
// tracked counter, distinct from len(Nodes()).
func (g *DirectedGraph) EdgeCount() int { return g.edgeCount }

// getInternal resolves label to its Symbol, wrapping a lookup miss with
// the offending label so callers get a stable, single-line message
// instead of a bare sentinel.
func (g *DirectedGraph) getInternal(label string) (symtab.Symbol, error) {
	sym, err := g.resolver.Get(label)
	if err != nil {
		return 0, fmt.Errorf("dgraph: node %q does not exist: %w", label, ErrNodeNotExist)
	}

	return sym, nil
}

// decodeAll is a small helper shared by every query method that must
// return a sorted, decoded []string from a []Symbol already known to be
// sorted ascending.
func decodeAll(r *symtab.Resolver, syms []symtab.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i], _ = r.Resolve(s)
	}

	return out
}

// DebugString renders a deterministic, sorted multi-line summary of the
// graph for troubleshooting - node count, edge count, roots, and leaves.
func (g *DirectedGraph) DebugString() string {
	var b strings.Builder
	b.WriteString("DirectedGraph{\n")
	b.WriteString("  nodes: ")
	b.WriteString(strings.Join(sortedStrings(decodeAll(g.resolver, g.nodes)), ", "))
	b.WriteString("\n  roots: ")
	b.WriteString(strings.Join(sortedStrings(decodeAll(g.resolver, g.roots)), ", "))
	b.WriteString("\n  leaves: ")
	b.WriteString(strings.Join(sortedStrings(decodeAll(g.resolver, g.leaves)), ", "))
	b.WriteString("\n  edges: ")
	b.WriteString(strconv.Itoa(g.edgeCount))
	b.WriteString("\n}")

	return b.String()
}

func sortedStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)

	return out
}
