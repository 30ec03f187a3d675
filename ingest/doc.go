// SPDX-License-Identifier: MIT
// Package: orbweaver/ingest
//
// Package ingest parses a simple tab-separated edge-list format: one
// `parent\tchild` pair per line, `#`-prefixed lines skipped, each
// surviving line driving one dgraph.GraphBuilder.AddEdge call.
package ingest
