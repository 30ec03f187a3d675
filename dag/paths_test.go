// SPDX-License-Identifier: MIT
package dag_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbweaver/dag"
	"github.com/katalvlaran/orbweaver/dgraph"
)

func buildFourPathFixture(t *testing.T) *dag.DirectedAcyclicGraph {
	t.Helper()
	gb := dgraph.NewGraphBuilder()
	require.NoError(t, gb.AddPath([]string{"0", "111", "222", "333", "444", "4"}))
	require.NoError(t, gb.AddPath([]string{"0", "999", "4"}))
	require.NoError(t, gb.AddPath([]string{"0", "1", "2", "3", "4"}))
	require.NoError(t, gb.AddEdge("0", "4"))

	acyclic, err := dag.BuildAcyclic(gb)
	require.NoError(t, err)

	return acyclic
}

func TestFindPath_ReturnsAValidPath(t *testing.T) {
	acyclic := buildFourPathFixture(t)

	path, err := acyclic.FindPath("0", "4")
	require.NoError(t, err)

	labels := path.Strings()
	require.NotEmpty(t, labels)
	assert.Equal(t, "0", labels[0])
	assert.Equal(t, "4", labels[len(labels)-1])
	for i := 0; i+1 < len(labels); i++ {
		exists, err := acyclic.EdgeExists(labels[i], labels[i+1])
		require.NoError(t, err)
		assert.True(t, exists)
	}
}

func TestFindPath_SameNodeIsSingleElement(t *testing.T) {
	acyclic := buildFourPathFixture(t)

	path, err := acyclic.FindPath("222", "222")
	require.NoError(t, err)
	assert.Equal(t, []string{"222"}, path.Strings())
}

func TestFindPath_BackwardPositionIsEmpty(t *testing.T) {
	acyclic := buildFourPathFixture(t)

	path, err := acyclic.FindPath("4", "0")
	require.NoError(t, err)
	assert.Equal(t, 0, path.Len())
}

func TestFindAllPaths_EnumeratesAllFour(t *testing.T) {
	acyclic := buildFourPathFixture(t)

	all, err := acyclic.FindAllPaths("0", "4")
	require.NoError(t, err)
	require.Len(t, all, 4)

	want := [][]string{
		{"0", "4"},
		{"0", "1", "2", "3", "4"},
		{"0", "111", "222", "333", "444", "4"},
		{"0", "999", "4"},
	}
	sort.Slice(all, func(i, j int) bool { return pathKey(all[i]) < pathKey(all[j]) })
	sort.Slice(want, func(i, j int) bool { return pathKey(want[i]) < pathKey(want[j]) })

	assert.Equal(t, want, all)
}

func pathKey(p []string) string {
	key := ""
	for _, s := range p {
		key += s + ">"
	}

	return key
}
