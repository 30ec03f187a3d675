// SPDX-License-Identifier: MIT
// Package: orbweaver/symtab
//
// normalize.go - canonicalizes labels before interning so that
// visually-identical-but-differently-encoded Unicode strings collapse to
// the same Symbol.

package symtab

import "golang.org/x/text/unicode/norm"

// normalizeLabel returns the NFC normal form of label. Pure-ASCII labels
// (the overwhelming common case for node IDs) pass through unchanged and
// unallocated courtesy of norm.NFC's fast path.
func normalizeLabel(label string) string {
	return norm.NFC.String(label)
}
