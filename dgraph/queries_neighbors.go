// SPDX-License-Identifier: MIT
// Package: orbweaver/dgraph
//
// queries_neighbors.go - direct neighbor lookups, leaf/root sets, and the
// least-common-parents / leaves-under / roots-over traversals.

package dgraph

import (
	"sort"

	"github.com/katalvlaran/orbweaver/nodeset"
	"github.com/katalvlaran/orbweaver/nodevec"
	"github.com/katalvlaran/orbweaver/symtab"
)

// Children emits, for each input label in order, every element of that
// label's children set. Duplicates across inputs that share neighbors
// are NOT removed - deduplication is deliberately left to the caller.
func (g *DirectedGraph) Children(labels []string) (*nodevec.NodeVec, error) {
	return g.collectNeighbors(labels, g.childrenMap)
}

// Parents emits, for each input label in order, every element of that
// label's parents set. Same no-dedup contract as Children.
func (g *DirectedGraph) Parents(labels []string) (*nodevec.NodeVec, error) {
	return g.collectNeighbors(labels, g.parentMap)
}

func (g *DirectedGraph) collectNeighbors(labels []string, nm *nodeset.NodeMap) (*nodevec.NodeVec, error) {
	release, err := g.scr.borrow()
	if err != nil {
		return nil, err
	}
	defer release()

	for _, label := range labels {
		sym, err := g.getInternal(label)
		if err != nil {
			return nil, err
		}
		g.scr.symA = append(g.scr.symA, nm.Get(sym).Members()...)
	}
	out := append([]symtab.Symbol(nil), g.scr.symA...)

	return nodevec.ResolveMany(g.resolver, out), nil
}

// HasChildren reports, per input label, whether its children-slot is
// Populated. Fails on the first unknown label.
func (g *DirectedGraph) HasChildren(labels []string) ([]bool, error) {
	return g.hasNeighbors(labels, g.childrenMap)
}

// HasParents reports, per input label, whether its parents-slot is
// Populated. Fails on the first unknown label.
func (g *DirectedGraph) HasParents(labels []string) ([]bool, error) {
	return g.hasNeighbors(labels, g.parentMap)
}

func (g *DirectedGraph) hasNeighbors(labels []string, nm *nodeset.NodeMap) ([]bool, error) {
	out := make([]bool, len(labels))
	for i, label := range labels {
		sym, err := g.getInternal(label)
		if err != nil {
			return nil, err
		}
		out[i] = nm.Get(sym).IsPopulated()
	}

	return out, nil
}

// EdgeExists reports whether the edge (from, to) was present at build
// time.
func (g *DirectedGraph) EdgeExists(from, to string) (bool, error) {
	pf, err := g.getInternal(from)
	if err != nil {
		return false, err
	}
	pt, err := g.getInternal(to)
	if err != nil {
		return false, err
	}

	return g.childrenMap.Get(pf).Contains(pt), nil
}

// GetAllLeaves decodes the set of every global leaf (a node whose
// children-slot is Empty), in ascending Symbol order - the order labels
// were first interned, not label order.
func (g *DirectedGraph) GetAllLeaves() []string { return decodeAll(g.resolver, g.leaves) }

// GetAllRoots decodes the set of every global root (a node whose
// parent-slot is Empty), in ascending Symbol order - the order labels
// were first interned, not label order.
func (g *DirectedGraph) GetAllRoots() []string { return decodeAll(g.resolver, g.roots) }

// LeastCommonParents returns the minimal subset M of selected such that no
// element of M has any parent in selected - the "upper frontier" of the
// selection. The result is sorted and deduplicated.
func (g *DirectedGraph) LeastCommonParents(selected []string) (*nodevec.NodeVec, error) {
	inSelected := make(map[symtab.Symbol]struct{}, len(selected))
	syms := make([]symtab.Symbol, 0, len(selected))
	for _, label := range selected {
		sym, err := g.getInternal(label)
		if err != nil {
			return nil, err
		}
		if _, dup := inSelected[sym]; dup {
			continue
		}
		inSelected[sym] = struct{}{}
		syms = append(syms, sym)
	}

	var out []symtab.Symbol
	for _, s := range syms {
		hasParentInSelection := false
		for _, p := range g.parentMap.Get(s).Members() {
			if _, ok := inSelected[p]; ok {
				hasParentInSelection = true
				break
			}
		}
		if !hasParentInSelection {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	out = dedupSorted(out)

	return nodevec.ResolveMany(g.resolver, out), nil
}

func dedupSorted(syms []symtab.Symbol) []symtab.Symbol {
	if len(syms) == 0 {
		return syms
	}
	out := syms[:1]
	for _, s := range syms[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}

	return out
}

// GetLeavesUnder performs reverse-reachability in the child direction:
// an iterative DFS from each seed, emitting any global leaf reached that
// has not already been emitted. Order reflects traversal, not sorting.
func (g *DirectedGraph) GetLeavesUnder(seeds []string) (*nodevec.NodeVec, error) {
	release, err := g.scr.borrow()
	if err != nil {
		return nil, err
	}
	defer release()

	visited := g.scr.visited
	var emitted []symtab.Symbol
	emittedSet := make(map[symtab.Symbol]struct{})

	for _, label := range seeds {
		seed, err := g.getInternal(label)
		if err != nil {
			return nil, err
		}
		stack := append(g.scr.symA[:0], seed)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := visited[cur]; ok {
				continue
			}
			visited[cur] = struct{}{}

			if g.childrenMap.Get(cur).IsEmpty() {
				if _, ok := emittedSet[cur]; !ok {
					emittedSet[cur] = struct{}{}
					emitted = append(emitted, cur)
				}
				continue
			}
			stack = append(stack, g.childrenMap.Get(cur).Members()...)
		}
		g.scr.symA = stack[:0]
	}

	return nodevec.ResolveMany(g.resolver, emitted), nil
}

// GetRootsOver is GetLeavesUnder's symmetric counterpart, walking parents
// instead of children and emitting global roots instead of leaves.
func (g *DirectedGraph) GetRootsOver(seeds []string) (*nodevec.NodeVec, error) {
	release, err := g.scr.borrow()
	if err != nil {
		return nil, err
	}
	defer release()

	visited := g.scr.visited
	var emitted []symtab.Symbol
	emittedSet := make(map[symtab.Symbol]struct{})

	for _, label := range seeds {
		seed, err := g.getInternal(label)
		if err != nil {
			return nil, err
		}
		stack := append(g.scr.symA[:0], seed)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := visited[cur]; ok {
				continue
			}
			visited[cur] = struct{}{}

			if g.parentMap.Get(cur).IsEmpty() {
				if _, ok := emittedSet[cur]; !ok {
					emittedSet[cur] = struct{}{}
					emitted = append(emitted, cur)
				}
				continue
			}
			stack = append(stack, g.parentMap.Get(cur).Members()...)
		}
		g.scr.symA = stack[:0]
	}

	return nodevec.ResolveMany(g.resolver, emitted), nil
}
