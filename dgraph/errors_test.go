// SPDX-License-Identifier: MIT
package dgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbweaver/dgraph"
)

func TestLookup_UnknownLabelWrapsErrNodeNotExist(t *testing.T) {
	gb := dgraph.NewGraphBuilder()
	require.NoError(t, gb.AddEdge("a", "b"))
	g, err := gb.BuildDirected()
	require.NoError(t, err)

	_, err = g.Children([]string{"ghost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dgraph.ErrNodeNotExist))
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestLookup_UnknownLabelReportedOnEdgeExists(t *testing.T) {
	gb := dgraph.NewGraphBuilder()
	require.NoError(t, gb.AddEdge("a", "b"))
	g, err := gb.BuildDirected()
	require.NoError(t, err)

	_, err = g.EdgeExists("a", "nowhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dgraph.ErrNodeNotExist))
	assert.Contains(t, err.Error(), `"nowhere"`)
}
