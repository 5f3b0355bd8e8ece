package vpack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPackable struct{ n int64 }

func (s stubPackable) PackInto(b *Builder) error {
	_, err := b.Add(NewInt(s.n))
	return err
}

func TestAddAny_Scalars(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"bool", true, true},
		{"string", "hi", "hi"},
		{"bytes", []byte{1, 2}, []byte{1, 2}},
		{"int", int(5), int64(5)},
		{"int8", int8(-5), int64(-5)},
		{"int16", int16(300), int64(300)},
		{"int32", int32(70000), int64(70000)},
		{"int64", int64(-70000), int64(-70000)},
		{"uint", uint(5), uint64(5)},
		{"uint8", uint8(5), uint64(5)},
		{"uint16", uint16(300), uint64(300)},
		{"uint32", uint32(70000), uint64(70000)},
		{"uint64", uint64(70000), uint64(70000)},
		{"float32", float32(1.5), float64(float32(1.5))},
		{"float64", float64(1.5), float64(1.5)},
		{"value", NewSmallInt(3), int64(3)},
		{"packable", stubPackable{n: 99}, int64(99)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder(DefaultOptions())
			require.NoError(t, AddAny(b, tc.in))
			got, err := decodeDocument(b.Bytes())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddAny_NestedSlice(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	in := []any{1, "two", 3.0, []any{4, 5}}
	require.NoError(t, AddAny(b, in))

	got, err := decodeDocument(b.Bytes())
	require.NoError(t, err)
	items, ok := got.([]any)
	require.True(t, ok)
	require.Len(t, items, 4)
	assert.Equal(t, int64(1), items[0])
	assert.Equal(t, "two", items[1])
	assert.Equal(t, 3.0, items[2])
	assert.Equal(t, []any{int64(4), int64(5)}, items[3])
}

func TestAddAny_MapStringAnySortedKeys(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	in := map[string]any{"z": 1, "a": 2, "m": 3}
	require.NoError(t, AddAny(b, in))

	got, err := decodeDocument(b.Bytes())
	require.NoError(t, err)
	pairs, ok := got.([]decodedKV)
	require.True(t, ok)
	require.Len(t, pairs, 3)
	assert.Equal(t, []string{"a", "m", "z"}, []string{pairs[0].Key, pairs[1].Key, pairs[2].Key})
}

func TestAddAny_MapStringString(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	in := map[string]string{"b": "2", "a": "1"}
	require.NoError(t, AddAny(b, in))

	got, err := decodeDocument(b.Bytes())
	require.NoError(t, err)
	pairs, ok := got.([]decodedKV)
	require.True(t, ok)
	require.Equal(t, []decodedKV{{"a", "1"}, {"b", "2"}}, pairs)
}

func TestAddAny_UnsupportedType(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	err := AddAny(b, struct{ X int }{X: 1})
	require.Error(t, err)
	var be *BuilderError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ErrUnexpectedType, be.Code)
}

func TestAddAnyOrdered_PreservesDocumentOrder(t *testing.T) {
	doc := NewDocument().Set("z", 1).Set("a", 2).Set("m", 3)
	b := NewBuilder(DefaultOptions())
	require.NoError(t, AddAnyOrdered(b, doc))

	got, err := decodeDocument(b.Bytes())
	require.NoError(t, err)
	pairs, ok := got.([]decodedKV)
	require.True(t, ok)
	require.Equal(t, []decodedKV{
		{"z", int64(1)},
		{"a", int64(2)},
		{"m", int64(3)},
	}, pairs)
}

func TestAddAnyOrdered_NestedDocument(t *testing.T) {
	inner := NewDocument().Set("b", 2).Set("a", 1)
	doc := NewDocument().Set("outer", inner)
	b := NewBuilder(DefaultOptions())
	require.NoError(t, AddAny(b, doc))

	got, err := decodeDocument(b.Bytes())
	require.NoError(t, err)
	pairs, ok := got.([]decodedKV)
	require.True(t, ok)
	require.Len(t, pairs, 1)
	assert.Equal(t, "outer", pairs[0].Key)
	innerPairs, ok := pairs[0].Value.([]decodedKV)
	require.True(t, ok)
	assert.Equal(t, []decodedKV{{"b", int64(2)}, {"a", int64(1)}}, innerPairs)
}

func TestDocument_Len(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, 0, doc.Len())
	doc.Set("a", 1).Set("b", 2).Set("a", 3) // update, not append
	assert.Equal(t, 2, doc.Len())
}
