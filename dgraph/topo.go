// SPDX-License-Identifier: MIT
// Package: orbweaver/dgraph
//
// topo.go - the package's one dependency on topo, kept to a single
// narrow method so dag can build on TopoSort's decoded output without
// ever reaching into DirectedGraph's private fields.

package dgraph

import "github.com/katalvlaran/orbweaver/topo"

// TopoSort computes a leaves-first topological order over the graph (see
// topo.Sort). It returns ErrGraphHasCycle if the graph is not acyclic.
// This is the operation dag.Build wraps into a DirectedAcyclicGraph.
func (g *DirectedGraph) TopoSort() ([]string, error) {
	order, err := topo.Sort(len(g.nodes), g.leaves, g.childrenMap, g.parentMap)
	if err != nil {
		return nil, err
	}

	return decodeAll(g.resolver, order), nil
}
