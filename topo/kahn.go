// SPDX-License-Identifier: MIT
// Package: orbweaver/topo
//
// kahn.go - Sort, the leaves-first Kahn pass.

package topo

import (
	"github.com/katalvlaran/orbweaver/nodeset"
	"github.com/katalvlaran/orbweaver/symtab"
)

// Sort computes a leaves-first topological order over the graph described
// by nodeCount, leaves, childrenMap, and parentMap. It works entirely on
// cloned copies of the two maps and never mutates its inputs.
//
// The returned order has parents appearing after their children (reverse
// it to obtain a conventional forward topological order). A non-nil error
// is always ErrGraphHasCycle: residual edges remained once the worklist
// was exhausted, meaning some node never reached in-degree (here:
// children-slot) zero.
//
// Complexity: O(V + E) - each node is pushed to the worklist exactly once
// and each edge is removed exactly once.
func Sort(nodeCount int, leaves []symtab.Symbol, childrenMap, parentMap *nodeset.NodeMap) ([]symtab.Symbol, error) {
	cm := childrenMap.Clone()
	pm := parentMap.Clone()

	work := append([]symtab.Symbol(nil), leaves...)
	order := make([]symtab.Symbol, 0, nodeCount)

	for len(work) > 0 {
		n := work[0]
		work = work[1:]
		order = append(order, n)

		parents := pm.Get(n).Members()
		for _, p := range parents {
			cm.Get(p).Remove(n)
			pm.Get(n).Remove(p)
			if cm.Get(p).IsEmpty() {
				work = append(work, p)
			}
		}
	}

	if len(order) != nodeCount {
		return nil, ErrGraphHasCycle
	}

	return order, nil
}
