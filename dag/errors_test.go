// SPDX-License-Identifier: MIT
package dag_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbweaver/dag"
	"github.com/katalvlaran/orbweaver/dgraph"
)

func TestFindPath_UnknownLabelWrapsErrNodeNotExist(t *testing.T) {
	gb := dgraph.NewGraphBuilder()
	require.NoError(t, gb.AddEdge("a", "b"))
	acyclic, err := dag.BuildAcyclic(gb)
	require.NoError(t, err)

	_, err = acyclic.FindPath("a", "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dgraph.ErrNodeNotExist))
	assert.Contains(t, err.Error(), `"ghost"`)
}
