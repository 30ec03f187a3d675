// SPDX-License-Identifier: MIT
package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orbweaver/symtab"
)

func TestBuilder_InternIsIdempotent(t *testing.T) {
	b := symtab.NewBuilder()

	s1, err := b.Intern("alpha")
	require.NoError(t, err)
	s2, err := b.Intern("alpha")
	require.NoError(t, err)
	assert.Equal(t, s1, s2, "interning the same label twice must return the same Symbol")

	s3, err := b.Intern("beta")
	require.NoError(t, err)
	assert.NotEqual(t, s1, s3)
}

func TestBuilder_InternAssignsDenseSymbolsInOrder(t *testing.T) {
	b := symtab.NewBuilder()

	first, err := b.Intern("a")
	require.NoError(t, err)
	second, err := b.Intern("b")
	require.NoError(t, err)
	third, err := b.Intern("a") // repeat, must not consume a new slot

	require.NoError(t, err)
	assert.Equal(t, symtab.Symbol(0), first)
	assert.Equal(t, symtab.Symbol(1), second)
	assert.Equal(t, first, third)
}

func TestResolver_RoundTrip(t *testing.T) {
	b := symtab.NewBuilder()
	sym, err := b.Intern("hello")
	require.NoError(t, err)

	r := b.Finalize()
	got, err := r.Get("hello")
	require.NoError(t, err)
	assert.Equal(t, sym, got)

	label, err := r.Resolve(sym)
	require.NoError(t, err)
	assert.Equal(t, "hello", label)
}

func TestResolver_UnknownLabel(t *testing.T) {
	r := symtab.NewBuilder().Finalize()

	_, err := r.Get("nope")
	assert.ErrorIs(t, err, symtab.ErrLabelNotFound)
}

func TestResolver_UnknownSymbol(t *testing.T) {
	r := symtab.NewBuilder().Finalize()

	_, err := r.Resolve(symtab.Symbol(0))
	assert.ErrorIs(t, err, symtab.ErrUnknownSymbol)
}

func TestResolver_NormalizesLabelsBeforeLookup(t *testing.T) {
	// A precomposed e-acute (NFC) and "e" followed by a combining acute
	// accent (NFD) must normalize to the same interned symbol.
	nfc := "caf" + string(rune(0x00e9))
	nfd := "cafe" + string(rune(0x0301))

	b := symtab.NewBuilder()
	symNFC, err := b.Intern(nfc)
	require.NoError(t, err)
	symNFD, err := b.Intern(nfd)
	require.NoError(t, err)

	assert.Equal(t, symNFC, symNFD)
}

func TestSymbol_IsSentinel(t *testing.T) {
	assert.True(t, symtab.SentinelSymbol.IsSentinel())
	assert.False(t, symtab.Symbol(0).IsSentinel())
}
