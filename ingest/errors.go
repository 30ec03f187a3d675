// SPDX-License-Identifier: MIT
// Package: orbweaver/ingest

package ingest

import "errors"

// ErrMalformedLine indicates a non-comment, non-blank line that does not
// split into exactly two tab-separated fields.
var ErrMalformedLine = errors.New("ingest: malformed line, expected \"parent\\tchild\"")
