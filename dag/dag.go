// SPDX-License-Identifier: MIT
// Package: orbweaver/dag
//
// dag.go - DirectedAcyclicGraph, Build/BuildAcyclic, and the transparent
// delegation to dgraph; the two DAG-specialized path queries are in
// paths.go.

package dag

import (
	"github.com/katalvlaran/orbweaver/dgraph"
	"github.com/katalvlaran/orbweaver/nodevec"
)

// DirectedAcyclicGraph wraps a dgraph.DirectedGraph already proven
// acyclic, caching its leaves-first topological order and each label's
// position within it.
type DirectedAcyclicGraph struct {
	inner *dgraph.DirectedGraph
	order []string
	pos   map[string]int
}

// Build computes dg's topological order and wraps it. Returns
// dgraph.ErrGraphHasCycle if dg is not acyclic; dg itself remains valid
// and usable either way.
func Build(dg *dgraph.DirectedGraph) (*DirectedAcyclicGraph, error) {
	order, err := dg.TopoSort()
	if err != nil {
		return nil, err
	}
	pos := make(map[string]int, len(order))
	for i, label := range order {
		pos[label] = i
	}

	return &DirectedAcyclicGraph{inner: dg, order: order, pos: pos}, nil
}

// BuildAcyclic finalizes gb into a DirectedGraph and immediately wraps it.
// It is a free function rather than a GraphBuilder method - see doc.go.
func BuildAcyclic(gb *dgraph.GraphBuilder) (*DirectedAcyclicGraph, error) {
	dg, err := gb.BuildDirected()
	if err != nil {
		return nil, err
	}

	return Build(dg)
}

// IntoInner returns the wrapped DirectedGraph, discarding DAG-specialized
// behavior.
func (d *DirectedAcyclicGraph) IntoInner() *dgraph.DirectedGraph { return d.inner }

// --- transparent delegation: unchanged by acyclicity ---

// Order returns the leaves-first topological order computed by TopoSort
// when this value was built (a later TopoSort call may return a different
// valid order, since neighbor iteration order is unspecified); reverse it
// for a conventional forward order.
func (d *DirectedAcyclicGraph) Order() []string { return append([]string(nil), d.order...) }

func (d *DirectedAcyclicGraph) Nodes() []string    { return d.inner.Nodes() }
func (d *DirectedAcyclicGraph) Len() int           { return d.inner.Len() }
func (d *DirectedAcyclicGraph) IsEmpty() bool      { return d.inner.IsEmpty() }
func (d *DirectedAcyclicGraph) EdgeCount() int     { return d.inner.EdgeCount() }
func (d *DirectedAcyclicGraph) DebugString() string { return d.inner.DebugString() }

func (d *DirectedAcyclicGraph) Children(labels []string) (*nodevec.NodeVec, error) {
	return d.inner.Children(labels)
}

func (d *DirectedAcyclicGraph) Parents(labels []string) (*nodevec.NodeVec, error) {
	return d.inner.Parents(labels)
}

func (d *DirectedAcyclicGraph) HasChildren(labels []string) ([]bool, error) {
	return d.inner.HasChildren(labels)
}

func (d *DirectedAcyclicGraph) HasParents(labels []string) ([]bool, error) {
	return d.inner.HasParents(labels)
}

func (d *DirectedAcyclicGraph) EdgeExists(from, to string) (bool, error) {
	return d.inner.EdgeExists(from, to)
}

func (d *DirectedAcyclicGraph) LeastCommonParents(selected []string) (*nodevec.NodeVec, error) {
	return d.inner.LeastCommonParents(selected)
}

func (d *DirectedAcyclicGraph) GetAllLeaves() []string { return d.inner.GetAllLeaves() }
func (d *DirectedAcyclicGraph) GetAllRoots() []string  { return d.inner.GetAllRoots() }

func (d *DirectedAcyclicGraph) GetLeavesUnder(seeds []string) (*nodevec.NodeVec, error) {
	return d.inner.GetLeavesUnder(seeds)
}

func (d *DirectedAcyclicGraph) GetRootsOver(seeds []string) (*nodevec.NodeVec, error) {
	return d.inner.GetRootsOver(seeds)
}

func (d *DirectedAcyclicGraph) FindPathOneToMany(from string, toList []string) ([]*nodevec.NodeVec, error) {
	return d.inner.FindPathOneToMany(from, toList)
}

// Subset delegates to the wrapped graph then re-wraps the result. A
// subset of a DAG is acyclic by construction, so the re-build cannot
// fail; a cycle here would indicate a bug in dgraph.Subset.
func (d *DirectedAcyclicGraph) Subset(node string) (*DirectedAcyclicGraph, error) {
	sub, err := d.inner.Subset(node)
	if err != nil {
		return nil, err
	}

	return Build(sub)
}

func (d *DirectedAcyclicGraph) SubsetMulti(seeds []string) (*DirectedAcyclicGraph, error) {
	sub, err := d.inner.SubsetMulti(seeds)
	if err != nil {
		return nil, err
	}

	return Build(sub)
}

func (d *DirectedAcyclicGraph) SubsetWithLimit(node string, k int) (*DirectedAcyclicGraph, error) {
	sub, err := d.inner.SubsetWithLimit(node, k)
	if err != nil {
		return nil, err
	}

	return Build(sub)
}

func (d *DirectedAcyclicGraph) SubsetMultiWithLimit(seeds []string, k int) (*DirectedAcyclicGraph, error) {
	sub, err := d.inner.SubsetMultiWithLimit(seeds, k)
	if err != nil {
		return nil, err
	}

	return Build(sub)
}
