// SPDX-License-Identifier: MIT
// Package: orbweaver/dag
//
// paths.go - FindPath via the cached topo slice, and FindAllPaths via
// plain DFS (no visited set needed: the graph is acyclic).

package dag

import (
	"fmt"

	"github.com/katalvlaran/orbweaver/dgraph"
	"github.com/katalvlaran/orbweaver/nodevec"
	"github.com/katalvlaran/orbweaver/symtab"
)

// FindPath returns *some* valid from -> to path (not necessarily
// shortest), found by walking forward through the topo slice [j..=i]
// where i = position(from), j = position(to) in the leaves-first
// ordering, greedily stepping into any node reachable from from with an
// edge to the current tail and building the path in reverse. If j > i, no
// from -> to path can exist (a child always sorts before its parents in
// the leaves-first order, so to would have to precede from) and the empty
// NodeVec is returned immediately. Unknown labels surface
// dgraph.ErrNodeNotExist.
//
// Complexity: O(R) to collect the R nodes reachable from from, plus
// O(|slice| * avg-degree) for the walk.
func (d *DirectedAcyclicGraph) FindPath(from, to string) (*nodevec.NodeVec, error) {
	fromSym, err := d.resolve(from)
	if err != nil {
		return nil, err
	}
	toSym, err := d.resolve(to)
	if err != nil {
		return nil, err
	}

	if from == to {
		return d.toNodeVec([]symtab.Symbol{fromSym}), nil
	}

	i, j := d.pos[from], d.pos[to]
	if j > i {
		return d.toNodeVec(nil), nil
	}

	// Only nodes reachable from `from` can lie on a from -> to path, so the
	// walk never steps into any other node.
	reach, err := d.inner.Subset(from)
	if err != nil {
		return nil, err
	}
	reachable := make(map[string]struct{}, reach.Len())
	for _, label := range reach.Nodes() {
		reachable[label] = struct{}{}
	}

	// Walk forward from j to i, building the path backward from `to`.
	tail := to
	path := []string{to}
	for pos := j + 1; pos <= i; pos++ {
		candidate := d.order[pos]
		if _, ok := reachable[candidate]; !ok {
			continue
		}
		exists, err := d.inner.EdgeExists(candidate, tail)
		if err != nil {
			return nil, err
		}
		if exists {
			path = append(path, candidate)
			tail = candidate
		}
	}
	if tail != from {
		return d.toNodeVec(nil), nil // to is not reachable from from
	}
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	syms := make([]symtab.Symbol, len(path))
	for i, label := range path {
		syms[i], err = d.resolve(label)
		if err != nil {
			return nil, err
		}
	}

	return d.toNodeVec(syms), nil
}

func (d *DirectedAcyclicGraph) resolve(label string) (symtab.Symbol, error) {
	sym, err := d.inner.Resolver().Get(label)
	if err != nil {
		return 0, fmt.Errorf("dag: node %q does not exist: %w", label, dgraph.ErrNodeNotExist)
	}

	return sym, nil
}

func (d *DirectedAcyclicGraph) toNodeVec(syms []symtab.Symbol) *nodevec.NodeVec {
	return nodevec.ResolveMany(d.inner.Resolver(), syms)
}

// FindAllPaths enumerates every from -> to path via plain DFS over
// children: no visited set is needed because the graph is acyclic, so
// every recursive descent strictly shortens the remaining search (no
// path can revisit a node).
func (d *DirectedAcyclicGraph) FindAllPaths(from, to string) ([][]string, error) {
	if _, err := d.resolve(from); err != nil {
		return nil, err
	}
	if _, err := d.resolve(to); err != nil {
		return nil, err
	}

	var results [][]string
	var walk func(cur string, path []string) error
	walk = func(cur string, path []string) error {
		path = append(path, cur)
		if cur == to {
			results = append(results, append([]string(nil), path...))
			return nil
		}
		children, err := d.inner.Children([]string{cur})
		if err != nil {
			return err
		}
		for i := 0; i < children.Len(); i++ {
			if err := walk(children.At(i), path); err != nil {
				return err
			}
		}

		return nil
	}
	if err := walk(from, nil); err != nil {
		return nil, err
	}

	return results, nil
}
