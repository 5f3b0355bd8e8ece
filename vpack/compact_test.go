package vpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarint_ForwardRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 20, 1 << 35, ^uint64(0)}
	for _, v := range values {
		n := varintLen(v)
		buf := make([]byte, n)
		written := putVarintForward(buf, v)
		require.Equal(t, n, written)

		got, width := readVarintForward(buf, 0)
		assert.Equal(t, n, width)
		assert.Equal(t, v, got)
	}
}

func TestVarint_BackwardRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 20, 1 << 35}
	for _, v := range values {
		n := varintLen(v)
		buf := make([]byte, n)
		putVarintBackward(buf, v)

		got, width := readVarintBackward(buf, len(buf))
		assert.Equal(t, n, width)
		assert.Equal(t, v, got)
	}
}

// TestBuilder_CompactArrayRoundTrip exercises spec §4.7's alternate
// variable-length-integer encoding, requested via OpenArrayCompact.
func TestBuilder_CompactArrayRoundTrip(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	require.NoError(t, b.OpenArrayCompact())
	for _, s := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		_, err := b.AddValue(NewString(s))
		require.NoError(t, err)
	}
	require.NoError(t, b.Close())

	buf := b.Bytes()
	require.Equal(t, headCompactArray, buf[0])

	got, err := decodeDocument(buf)
	require.NoError(t, err)
	assert.Equal(t, []any{"alpha", "beta", "gamma", "delta", "epsilon"}, got)
}

func TestBuilder_CompactObjectRoundTrip(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	require.NoError(t, b.OpenObjectCompact())
	require.NoError(t, b.AddKV("one", NewInt(1)))
	require.NoError(t, b.AddKV("two", NewInt(2)))
	require.NoError(t, b.AddKV("three", NewInt(3)))
	require.NoError(t, b.Close())

	buf := b.Bytes()
	require.Equal(t, headCompactObject, buf[0])

	got, err := decodeDocument(buf)
	require.NoError(t, err)
	assert.Equal(t, []decodedKV{
		{"one", int64(1)},
		{"two", int64(2)},
		{"three", int64(3)},
	}, got)
}

// TestBuilder_CompactEmptyArrayAndObject covers the degenerate
// zero-member compact compound, which closeArray/closeObject special-case
// before ever attempting the compact form.
func TestBuilder_CompactEmptyArrayAndObject(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	require.NoError(t, b.OpenArrayCompact())
	require.NoError(t, b.Close())
	assert.Equal(t, []byte{headEmptyArray}, b.Bytes())

	b2 := NewBuilder(DefaultOptions())
	require.NoError(t, b2.OpenObjectCompact())
	require.NoError(t, b2.Close())
	assert.Equal(t, []byte{headEmptyObject}, b2.Bytes())
}

// TestBuilder_BuildUnindexedOptionsPreferCompact exercises the Options
// variants of the same hint (spec §6's buildUnindexedArrays/Objects).
func TestBuilder_BuildUnindexedOptionsPreferCompact(t *testing.T) {
	b := NewBuilder(Options{BuildUnindexedArrays: true, BuildUnindexedObjects: true})
	require.NoError(t, b.OpenArray())
	require.NoError(t, b.OpenObject()) // nested: compact hint must not leak from parent to child independent of call
	require.NoError(t, b.AddKV("x", NewInt(1)))
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	buf := b.Bytes()
	assert.Equal(t, headCompactArray, buf[0])

	got, err := decodeDocument(buf)
	require.NoError(t, err)
	items, ok := got.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, []decodedKV{{"x", int64(1)}}, items[0])
}
