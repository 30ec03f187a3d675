// SPDX-License-Identifier: MIT
package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbweaver/dgraph"
	"github.com/katalvlaran/orbweaver/ingest"
)

func TestLoad_SkipsCommentsAndBlankLines(t *testing.T) {
	input := "# a comment\n\na\tb\n\nb\tc\n# trailing comment\n"
	gb := dgraph.NewGraphBuilder()

	n, err := ingest.Load(strings.NewReader(input), gb)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	g, err := gb.BuildDirected()
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	exists, err := g.EdgeExists("a", "b")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoad_RejectsMalformedLine(t *testing.T) {
	input := "a\tb\nnotabtabbedline\n"
	gb := dgraph.NewGraphBuilder()

	n, err := ingest.Load(strings.NewReader(input), gb)
	assert.ErrorIs(t, err, ingest.ErrMalformedLine)
	assert.Equal(t, 1, n, "the edge before the malformed line was already counted")
}

func TestLoad_EmptyInputAddsNothing(t *testing.T) {
	gb := dgraph.NewGraphBuilder()

	n, err := ingest.Load(strings.NewReader(""), gb)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
