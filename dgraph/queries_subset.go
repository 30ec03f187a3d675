// SPDX-License-Identifier: MIT
// Package: orbweaver/dgraph
//
// queries_subset.go - induced-subgraph extraction (Subset family).
//
// The Resolver is always shared, never rebuilt: symbol identity is
// preserved across the original graph and every derived subset. A
// derived graph never shares scratch buffers with its source - each
// subset (including the "clone of the whole graph" produced by
// SubsetMulti(nil)) gets its own.

package dgraph

import (
	"sort"

	"github.com/katalvlaran/orbweaver/nodeset"
	"github.com/katalvlaran/orbweaver/symtab"
)

// Subset returns the induced subgraph on the forward-reachable set from
// node. The subset's only root is node itself.
func (g *DirectedGraph) Subset(node string) (*DirectedGraph, error) {
	sym, err := g.getInternal(node)
	if err != nil {
		return nil, err
	}

	return g.subsetFrom([]symtab.Symbol{sym}, -1), nil
}

// SubsetWithLimit is Subset bounded to depth k edges from node. Nodes
// reached at exactly depth k are forced to be leaves: their children are
// not traversed and their children-slot is set Empty. k == 0 is rejected
// with ErrZeroSubsetLimit.
func (g *DirectedGraph) SubsetWithLimit(node string, k int) (*DirectedGraph, error) {
	if k == 0 {
		return nil, ErrZeroSubsetLimit
	}
	sym, err := g.getInternal(node)
	if err != nil {
		return nil, err
	}

	return g.subsetFrom([]symtab.Symbol{sym}, k), nil
}

// SubsetMulti runs Subset from each seed in turn, sharing visited state;
// the result's roots are exactly the seeds not reachable from another
// seed. An empty seeds list is a deliberate convenience: it yields a
// (scratch-independent) clone of the whole graph.
func (g *DirectedGraph) SubsetMulti(seeds []string) (*DirectedGraph, error) {
	if len(seeds) == 0 {
		return g.cloneWholeGraph(), nil
	}
	syms, err := g.resolveAll(seeds)
	if err != nil {
		return nil, err
	}

	return g.subsetFrom(syms, -1), nil
}

// SubsetMultiWithLimit is SubsetMulti bounded to depth k edges from the
// nearest seed. k == 0 is rejected with ErrZeroSubsetLimit.
func (g *DirectedGraph) SubsetMultiWithLimit(seeds []string, k int) (*DirectedGraph, error) {
	if k == 0 {
		return nil, ErrZeroSubsetLimit
	}
	if len(seeds) == 0 {
		return g.cloneWholeGraph(), nil
	}
	syms, err := g.resolveAll(seeds)
	if err != nil {
		return nil, err
	}

	return g.subsetFrom(syms, k), nil
}

func (g *DirectedGraph) resolveAll(labels []string) ([]symtab.Symbol, error) {
	out := make([]symtab.Symbol, len(labels))
	for i, l := range labels {
		sym, err := g.getInternal(l)
		if err != nil {
			return nil, err
		}
		out[i] = sym
	}

	return out, nil
}

func (g *DirectedGraph) cloneWholeGraph() *DirectedGraph {
	return &DirectedGraph{
		resolver:    g.resolver,
		childrenMap: g.childrenMap,
		parentMap:   g.parentMap,
		roots:       g.roots,
		leaves:      g.leaves,
		nodes:       g.nodes,
		edgeCount:   g.edgeCount,
		scr:         newScratch(),
	}
}

type subsetQueueItem struct {
	sym   symtab.Symbol
	depth int
}

// subsetFrom implements the shared BFS behind Subset/SubsetWithLimit/
// SubsetMulti/SubsetMultiWithLimit. limit < 0 means unlimited depth.
func (g *DirectedGraph) subsetFrom(seeds []symtab.Symbol, limit int) *DirectedGraph {
	newChildren := nodeset.NewNodeMap(g.resolver.Len())
	newParent := nodeset.NewNodeMap(g.resolver.Len())

	visited := make(map[symtab.Symbol]struct{}, len(seeds))
	var queue []subsetQueueItem
	for _, s := range seeds {
		if _, ok := visited[s]; ok {
			continue
		}
		visited[s] = struct{}{}
		queue = append(queue, subsetQueueItem{sym: s, depth: 0})
	}

	edgeCount := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if limit >= 0 && cur.depth >= limit {
			newChildren.Get(cur.sym).IntoEmpty()
			continue
		}

		slot := g.childrenMap.Get(cur.sym)
		if !slot.IsPopulated() {
			newChildren.Get(cur.sym).IntoEmpty()
			continue
		}
		for _, child := range slot.Members() {
			if newChildren.Get(cur.sym).Insert(child) {
				edgeCount++
			}
			newParent.Get(child).Insert(cur.sym)
			if _, ok := visited[child]; !ok {
				visited[child] = struct{}{}
				queue = append(queue, subsetQueueItem{sym: child, depth: cur.depth + 1})
			}
		}
	}

	nodes := make([]symtab.Symbol, 0, len(visited))
	for s := range visited {
		nodes = append(nodes, s)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	var roots, leaves []symtab.Symbol
	for _, n := range nodes {
		newChildren.Get(n).IntoEmpty()
		newParent.Get(n).IntoEmpty()
		if newChildren.Get(n).IsEmpty() {
			leaves = append(leaves, n)
		}
		if newParent.Get(n).IsEmpty() {
			roots = append(roots, n)
		}
	}

	return &DirectedGraph{
		resolver:    g.resolver,
		childrenMap: newChildren,
		parentMap:   newParent,
		roots:       roots,
		leaves:      leaves,
		nodes:       nodes,
		edgeCount:   edgeCount,
		scr:         newScratch(),
	}
}
