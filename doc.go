// Package orbweaver is an in-memory labeled directed graph library built
// around dense integer symbols rather than string keys.
//
//	A small stack of purpose-built packages:
//
//	  • Interning: strings intern once into dense, cache-friendly Symbols
//	  • Lazy adjacency: three-state sets classify leaves/roots without
//	    sentinel nodes or a separate degree pass
//	  • Immutable queries: once built, a graph never mutates; scratch
//	    buffers are reused across calls instead of re-allocated
//	  • DAG support: a thin wrapper that caches a topological order and
//	    specializes path-finding on top of it
//
// Everything is organized under a handful of subpackages:
//
//	symtab/   — the Builder -> Resolver string interner and its byte arena
//	nodeset/  — LazySet and NodeMap, the three-state adjacency slots
//	nodevec/  — NodeVec, a zero-copy batch-decode handle over an Arena
//	dgraph/   — GraphBuilder and the immutable DirectedGraph query engine
//	topo/     — Kahn's algorithm from the leaves
//	dag/      — DirectedAcyclicGraph, built atop dgraph + topo
//	ingest/   — tab-separated edge-list parsing
//	snapshot/ — persisted-state save/load
//	cmd/orbweaver/ — a CLI over the above
//
// Quick example:
//
//	gb := dgraph.NewGraphBuilder()
//	_ = gb.AddEdge("root", "child")
//	g, err := gb.BuildDirected()
//
// See DESIGN.md in the module root for how each package fits together.
package orbweaver
