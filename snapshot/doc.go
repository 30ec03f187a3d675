// SPDX-License-Identifier: MIT
// Package: orbweaver/snapshot
//
// Package snapshot persists and reloads a dgraph.DirectedGraph. The core
// dgraph package itself defines no wire format; this package is an
// external collaborator, not part of dgraph's own contract.
//
// The on-disk shape is the graph's edge list (every (parent, child) pair,
// grouped by parent, children sorted for determinism) plus a Header
// carrying a format version and a per-save BuildID. Reloading always
// rebuilds via dgraph.GraphBuilder.BuildDirected, so roots/leaves/nodes/
// edge-count and every scratch buffer come back freshly computed rather
// than copied - there is no stale derived state to get wrong. A version
// mismatch is rejected outright rather than attempting a best-effort
// decode.
package snapshot
