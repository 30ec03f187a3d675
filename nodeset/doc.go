// Package nodeset provides LazySet, the three-state per-node adjacency
// slot ({Uninitialized, Empty, Populated}) that distinguishes "unknown
// node" from "known node, no neighbors" without a separate membership set,
// and NodeMap, a dense vector of LazySet indexed directly by symtab.Symbol.
//
// The three states:
//
//	Uninitialized - not a known node in this map.
//	Empty         - known node, no neighbors in this direction.
//	Populated     - known node, has neighbors (the contained set).
//
// This distinction is what makes leaf/root classification O(1): a node is
// a leaf iff its children-slot is Empty, a root iff its parent-slot is
// Empty - no sentinel nodes or second index required.
package nodeset
