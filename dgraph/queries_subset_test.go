// SPDX-License-Identifier: MIT
package dgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbweaver/dgraph"
)

func buildLimitFixture(t *testing.T) *dgraph.DirectedGraph {
	t.Helper()
	gb := dgraph.NewGraphBuilder()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"C", "D"}, {"C", "E"}, {"E", "F"}} {
		require.NoError(t, gb.AddEdge(e[0], e[1]))
	}
	g, err := gb.BuildDirected()
	require.NoError(t, err)

	return g
}

func TestSubsetWithLimit_ForcesLeavesAtDepth(t *testing.T) {
	g := buildLimitFixture(t)

	sub1, err := g.SubsetWithLimit("A", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, sub1.Nodes())
	assert.ElementsMatch(t, []string{"B", "C"}, sub1.GetAllLeaves())

	sub2, err := g.SubsetWithLimit("A", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, sub2.Nodes())

	sub3, err := g.SubsetWithLimit("A", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, sub3.Nodes())
}

func TestSubsetWithLimit_ZeroIsRejected(t *testing.T) {
	g := buildLimitFixture(t)

	_, err := g.SubsetWithLimit("A", 0)
	assert.ErrorIs(t, err, dgraph.ErrZeroSubsetLimit)

	_, err = g.SubsetMultiWithLimit([]string{"A"}, 0)
	assert.ErrorIs(t, err, dgraph.ErrZeroSubsetLimit)
}

func TestSubsetMulti_EmptySeedsClonesWholeGraph(t *testing.T) {
	g := buildLimitFixture(t)

	clone, err := g.SubsetMulti(nil)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), clone.Nodes())
	assert.Equal(t, g.EdgeCount(), clone.EdgeCount())

	// A clone never shares scratch with its source, so both can be
	// queried without tripping ErrConcurrentQuery.
	_, err = clone.Children([]string{"A"})
	assert.NoError(t, err)
	_, err = g.Children([]string{"A"})
	assert.NoError(t, err)
}

func TestSubset_IdempotentAsSetOfNodes(t *testing.T) {
	g := buildLimitFixture(t)

	once, err := g.Subset("C")
	require.NoError(t, err)
	twice, err := once.Subset("C")
	require.NoError(t, err)

	assert.Equal(t, once.Nodes(), twice.Nodes())
	assert.Equal(t, once.EdgeCount(), twice.EdgeCount())
}

func TestSubsetMulti_RootsExcludeReachableSeeds(t *testing.T) {
	g := buildLimitFixture(t)

	sub, err := g.SubsetMulti([]string{"A", "C"})
	require.NoError(t, err)
	// C is reachable from A, so only A remains a root of the subset.
	assert.Equal(t, []string{"A"}, sub.GetAllRoots())
}
