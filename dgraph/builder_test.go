// SPDX-License-Identifier: MIT
package dgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbweaver/dgraph"
)

func TestBuildDirected_EmptyFanOut(t *testing.T) {
	gb := dgraph.NewGraphBuilder()
	require.NoError(t, gb.AddEdge("a", "b"))

	g, err := gb.BuildDirected()
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, g.Nodes())
	assert.Equal(t, []string{"a"}, g.GetAllRoots())
	assert.Equal(t, []string{"b"}, g.GetAllLeaves())
	assert.Equal(t, 1, g.EdgeCount())

	children, err := g.Children([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, children.Strings())

	parents, err := g.Parents([]string{"b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, parents.Strings())

	path, err := g.FindPath("a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, path.Strings())

	empty, err := g.FindPath("b", "a")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestBuildDirected_Diamond(t *testing.T) {
	gb := dgraph.NewGraphBuilder()
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}} {
		require.NoError(t, gb.AddEdge(e[0], e[1]))
	}
	g, err := gb.BuildDirected()
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, g.GetAllRoots())
	assert.Equal(t, []string{"d"}, g.GetAllLeaves())

	path, err := g.FindPath("a", "d")
	require.NoError(t, err)
	assert.Equal(t, 3, path.Len())
	assert.Equal(t, "a", path.At(0))
	assert.Equal(t, "d", path.At(2))

	all, err := g.FindAllPaths("a", "d")
	require.NoError(t, err)
	sort.Slice(all, func(i, j int) bool { return all[i][1] < all[j][1] })
	require.Len(t, all, 2)
	assert.Equal(t, []string{"a", "b", "d"}, all[0])
	assert.Equal(t, []string{"a", "c", "d"}, all[1])

	lcp, err := g.LeastCommonParents([]string{"b", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, lcp.Strings())
}

func TestBuildDirected_MultiRootCoverage(t *testing.T) {
	gb := dgraph.NewGraphBuilder()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"C", "D"}, {"C", "H"}, {"0", "1"}} {
		require.NoError(t, gb.AddEdge(e[0], e[1]))
	}
	g, err := gb.BuildDirected()
	require.NoError(t, err)

	// Roots and leaves come back in Symbol (first-insertion) order; sort
	// the labels before comparing.
	roots := g.GetAllRoots()
	sort.Strings(roots)
	assert.Equal(t, []string{"0", "A"}, roots)
	leaves := g.GetAllLeaves()
	sort.Strings(leaves)
	assert.Equal(t, []string{"1", "B", "D", "H"}, leaves)

	sub, err := g.Subset("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "H"}, sub.Nodes())
	assert.Equal(t, []string{"A"}, sub.GetAllRoots())
}

func TestAddEdge_DuplicateDoesNotInflateEdgeCount(t *testing.T) {
	gb := dgraph.NewGraphBuilder()
	require.NoError(t, gb.AddEdge("a", "b"))
	require.NoError(t, gb.AddEdge("a", "b"))

	g, err := gb.BuildDirected()
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddPath_ChainsAdjacentLabels(t *testing.T) {
	gb := dgraph.NewGraphBuilder()
	require.NoError(t, gb.AddPath([]string{"a", "b", "c"}))

	g, err := gb.BuildDirected()
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	exists, err := g.EdgeExists("a", "b")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = g.EdgeExists("a", "c")
	require.NoError(t, err)
	assert.False(t, exists)
}
