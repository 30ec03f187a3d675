// SPDX-License-Identifier: MIT
// Package: orbweaver/ingest
//
// tsv.go - Load, the tab-separated edge-list reader.
//
// Format: one `parent\tchild` pair per line; lines beginning with '#' and
// blank lines are skipped; every surviving line drives one
// dgraph.GraphBuilder.AddEdge call, in file order.
//
// Stdlib-only by design (see DESIGN.md): bufio.Scanner already gives a
// sized, allocation-light line reader for a two-field format; the
// obvious alternative (encoding/csv) is itself stdlib.

package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/orbweaver/dgraph"
)

// Load reads tab-separated parent/child lines from r, calling
// gb.AddEdge(parent, child) for each one in order. It returns the number
// of edges added. A malformed line is wrapped with its 1-based line
// number and ErrMalformedLine; an AddEdge failure (e.g. symtab.ErrSymbolSpaceExhausted)
// is returned as-is.
func Load(r io.Reader, gb *dgraph.GraphBuilder) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return count, fmt.Errorf("ingest: line %d: %w", lineNo, ErrMalformedLine)
		}

		if err := gb.AddEdge(fields[0], fields[1]); err != nil {
			return count, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("ingest: scanning input: %w", err)
	}

	return count, nil
}
