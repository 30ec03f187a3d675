// SPDX-License-Identifier: MIT
// Package: orbweaver/dgraph
//
// builder.go - edge accumulation and the BuildDirected finalization
// algorithm.
//
// AI-Hints (file):
//   - GraphBuilder is the only mutable type in this package; everything it
//     produces (DirectedGraph) is immutable from that point on.
//   - BuildDirected's step 1 (the two sort+dedup passes) forks over
//     independent owned slices via
//     golang.org/x/sync/errgroup - a self-contained fork-join over owned
//     slices, not general parallel query support. Do not reach for
//     errgroup elsewhere in this package on that basis.

package dgraph

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orbweaver/nodeset"
	"github.com/katalvlaran/orbweaver/symtab"
)

// GraphBuilder accumulates (parent, child) symbol pairs and the interner
// that produced them. It is not safe for concurrent use.
type GraphBuilder struct {
	interner *symtab.Builder
	parents  []symtab.Symbol
	children []symtab.Symbol
}

// NewGraphBuilder returns an empty builder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{interner: symtab.NewBuilder()}
}

// AddEdge interns from and to and records the edge. Complexity: O(1)
// amortized (two interns + two appends).
func (b *GraphBuilder) AddEdge(from, to string) error {
	pf, err := b.interner.Intern(from)
	if err != nil {
		return err
	}
	pt, err := b.interner.Intern(to)
	if err != nil {
		return err
	}
	b.parents = append(b.parents, pf)
	b.children = append(b.children, pt)

	return nil
}

// AddPath calls AddEdge(labels[i], labels[i+1]) for each adjacent pair.
// A path of fewer than two labels adds no edges.
func (b *GraphBuilder) AddPath(labels []string) error {
	for i := 0; i+1 < len(labels); i++ {
		if err := b.AddEdge(labels[i], labels[i+1]); err != nil {
			return err
		}
	}

	return nil
}

// BuildDirected finalizes the builder into an immutable DirectedGraph via
// a six-step sort/dedup/classify/sweep algorithm. The builder must not be
// reused afterward.
func (b *GraphBuilder) BuildDirected() (*DirectedGraph, error) {
	// Step 1: copy + sort + dedup each edge-vector independently. The two
	// sorts are data-parallel over disjoint owned slices - fork them.
	var uniqueParents, uniqueChildren []symtab.Symbol
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		uniqueParents = sortDedupSymbols(b.parents)
		return nil
	})
	g.Go(func() error {
		uniqueChildren = sortDedupSymbols(b.children)
		return nil
	})
	_ = g.Wait() // neither goroutine can fail; error return kept for API symmetry

	// Step 2: union into nodes (sort + dedup).
	nodes := sortDedupSymbols(append(append([]symtab.Symbol{}, uniqueParents...), uniqueChildren...))

	// Step 3: leaves = uniqueChildren \ uniqueParents; roots = uniqueParents \ uniqueChildren.
	leaves := setDifference(uniqueChildren, uniqueParents)
	roots := setDifference(uniqueParents, uniqueChildren)

	// Step 4: finalize the interner; allocate adjacency maps sized to it.
	resolver := b.interner.Finalize()
	dg := &DirectedGraph{
		resolver: resolver,
		roots:    roots,
		leaves:   leaves,
		nodes:    nodes,
		scr:      newScratch(),
	}
	dg.childrenMap = nodeset.NewNodeMap(resolver.Len())
	dg.parentMap = nodeset.NewNodeMap(resolver.Len())

	// Step 5: sweep original edges in input order, building adjacency and
	// counting true insertions as the edge count.
	for i := range b.parents {
		p, c := b.parents[i], b.children[i]
		if dg.childrenMap.Get(p).Insert(c) {
			dg.edgeCount++
		}
		dg.parentMap.Get(c).Insert(p)
	}

	// Step 6: every node in `nodes` gets at least Empty in both maps, so
	// leaf/root classification via LazySet state is correct even for
	// nodes with no outgoing (or no incoming) edges.
	for _, n := range nodes {
		dg.childrenMap.Get(n).IntoEmpty()
		dg.parentMap.Get(n).IntoEmpty()
	}

	return dg, nil
}

// sortDedupSymbols returns a sorted, deduplicated copy of syms.
func sortDedupSymbols(syms []symtab.Symbol) []symtab.Symbol {
	cp := append([]symtab.Symbol{}, syms...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	var last symtab.Symbol
	haveLast := false
	for _, s := range cp {
		if haveLast && s == last {
			continue
		}
		out = append(out, s)
		last, haveLast = s, true
	}

	return out
}

// setDifference returns the elements of a (assumed sorted+deduped) absent
// from b (assumed sorted+deduped), itself sorted ascending.
func setDifference(a, b []symtab.Symbol) []symtab.Symbol {
	inB := make(map[symtab.Symbol]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}
	out := make([]symtab.Symbol, 0, len(a))
	for _, s := range a {
		if _, ok := inB[s]; !ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
