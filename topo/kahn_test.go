// SPDX-License-Identifier: MIT
package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbweaver/nodeset"
	"github.com/katalvlaran/orbweaver/symtab"
	"github.com/katalvlaran/orbweaver/topo"
)

// chainFixture builds A -> B -> C (A root, C leaf) directly over nodeset,
// independent of dgraph, to keep this package's tests from depending on
// its own consumer.
func chainFixture(t *testing.T) (cm, pm *nodeset.NodeMap, a, b, c symtab.Symbol) {
	t.Helper()
	b2 := symtab.NewBuilder()
	var err error
	a, err = b2.Intern("A")
	require.NoError(t, err)
	b, err = b2.Intern("B")
	require.NoError(t, err)
	c, err = b2.Intern("C")
	require.NoError(t, err)

	cm = nodeset.NewNodeMap(3)
	pm = nodeset.NewNodeMap(3)

	cm.Get(a).Insert(b)
	pm.Get(b).Insert(a)
	cm.Get(b).Insert(c)
	pm.Get(c).Insert(b)
	cm.Get(c).IntoEmpty()
	pm.Get(a).IntoEmpty()

	return cm, pm, a, b, c
}

func TestSort_LeavesFirstOrder(t *testing.T) {
	cm, pm, a, b, c := chainFixture(t)

	order, err := topo.Sort(3, []symtab.Symbol{c}, cm, pm)
	require.NoError(t, err)
	assert.Equal(t, []symtab.Symbol{c, b, a}, order)
}

func TestSort_DoesNotMutateInputs(t *testing.T) {
	cm, pm, _, b, c := chainFixture(t)

	_, err := topo.Sort(3, []symtab.Symbol{c}, cm, pm)
	require.NoError(t, err)

	// The caller's maps must be untouched: B -> C edge still present.
	assert.True(t, cm.Get(b).Contains(c))
	assert.True(t, pm.Get(c).Contains(b))
}

func TestSort_CycleIsDetected(t *testing.T) {
	b2 := symtab.NewBuilder()
	x, err := b2.Intern("X")
	require.NoError(t, err)
	y, err := b2.Intern("Y")
	require.NoError(t, err)

	cm := nodeset.NewNodeMap(2)
	pm := nodeset.NewNodeMap(2)
	// X -> Y -> X: a two-node cycle, no leaves.
	cm.Get(x).Insert(y)
	pm.Get(y).Insert(x)
	cm.Get(y).Insert(x)
	pm.Get(x).Insert(y)

	_, err = topo.Sort(2, nil, cm, pm)
	assert.ErrorIs(t, err, topo.ErrGraphHasCycle)
}
