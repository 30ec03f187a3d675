// SPDX-License-Identifier: MIT
// Package: orbweaver/topo
//
// Package topo implements Kahn's algorithm from the leaves. It operates
// purely on nodeset.NodeMap/symtab.Symbol - never on dgraph.DirectedGraph -
// so both dgraph (which calls Sort to implement TopoSort) and dag (which
// builds atop dgraph) can import topo without an import cycle.
//
// Sort consumes a working copy's in-degree (here: the parent-direction
// degree) starting from the leaves, rather than producing an order via a
// recursive DFS finish order - the two approaches agree on validity but
// Kahn's worklist makes the leaves-first property immediate instead of
// requiring a reversal step.
package topo
