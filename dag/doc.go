// SPDX-License-Identifier: MIT
// Package: orbweaver/dag
//
// Package dag wraps a dgraph.DirectedGraph known to be acyclic, offering
// DAG-specialized path queries (FindPath via the cached topo slice,
// FindAllPaths via plain DFS with no visited set) atop the same query
// surface as dgraph.DirectedGraph, reached by transparent delegation.
//
// Build/BuildAcyclic are free functions rather than methods on
// dgraph.GraphBuilder: a Go method returning a dag.DirectedAcyclicGraph
// cannot live in package dgraph without dgraph importing dag - and dag
// already imports dgraph to build atop it. Free functions in dag are the
// idiomatic way to break that cycle; dgraph itself remains unaware dag
// exists.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   - New DAG-only query? Add it as a method on DirectedAcyclicGraph here
//     or in paths.go, not on dgraph.DirectedGraph - dgraph must stay
//     acyclicity-agnostic.
//   - Keep delegation thin: forward to inner unless acyclicity changes the
//     answer or lets it be computed cheaper.
package dag
