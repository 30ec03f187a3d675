// SPDX-License-Identifier: MIT
// Package: orbweaver/snapshot

package snapshot

import "errors"

// ErrSnapshotVersionMismatch indicates a loaded snapshot's version prefix
// does not match formatVersion. Reloading rejects such a snapshot rather
// than attempting a best-effort decode.
var ErrSnapshotVersionMismatch = errors.New("snapshot: version mismatch")
