// SPDX-License-Identifier: MIT
// Package: orbweaver/topo

package topo

import "errors"

// ErrGraphHasCycle indicates Sort's working copy terminated with residual
// edges: some nodes never reached an Empty children-slot, so the input
// is not a DAG. Detected by comparing output length against node count
// (equivalently, remaining edge count != 0).
var ErrGraphHasCycle = errors.New("topo: graph has a cycle")
