package memkv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPutDelete(t *testing.T) {
	e := NewEngine(nil)

	_, ok := e.Get([]byte("a"))
	assert.False(t, ok)

	e.Put([]byte("a"), []byte("1"))
	v, ok := e.Get([]byte("a"))
	require.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	e.Put([]byte("a"), []byte("2"))
	v, ok = e.Get([]byte("a"))
	require.True(t, ok)
	assert.Equal(t, []byte("2"), v)

	e.Delete([]byte("a"))
	_, ok = e.Get([]byte("a"))
	assert.False(t, ok)
}

func TestScanOrderingAndBounds(t *testing.T) {
	e := NewEngine(nil)
	for _, k := range [][]byte{[]byte("b"), []byte("d"), []byte("a"), []byte("c")} {
		e.Put(k, k)
	}

	got := e.Scan([]byte("a"), []byte("c"))
	require.Len(t, got, 2)
	assert.Equal(t, []byte("a"), got[0].Key)
	assert.Equal(t, []byte("b"), got[1].Key)
}

func TestScanAllReturnsEverythingInOrder(t *testing.T) {
	e := NewEngine(nil)
	keys := [][]byte{[]byte("z"), []byte("a"), []byte("m")}
	for _, k := range keys {
		e.Put(k, k)
	}

	got := e.ScanAll()
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, bytes.Compare(got[i-1].Key, got[i].Key) < 0)
	}
}

func TestAddAccumulatesFromAbsent(t *testing.T) {
	e := NewEngine(nil)
	assert.Equal(t, int64(5), e.Add([]byte("c"), 5))
	assert.Equal(t, int64(3), e.Add([]byte("c"), -2))

	v, ok := e.Get([]byte("c"))
	require.True(t, ok)
	assert.Equal(t, int64(3), decodeCounter(v))
}

func TestPrefixUpperBound(t *testing.T) {
	assert.Equal(t, []byte("ac"), PrefixUpperBound([]byte("ab")))
	assert.Equal(t, []byte{0x01}, PrefixUpperBound([]byte{0x00, 0xFF}))
	assert.Nil(t, PrefixUpperBound([]byte{0xFF, 0xFF}))

	e := NewEngine(nil)
	e.Put([]byte("ab1"), []byte("x"))
	e.Put([]byte("ab2"), []byte("x"))
	e.Put([]byte("ac1"), []byte("x"))
	got := e.Scan([]byte("ab"), PrefixUpperBound([]byte("ab")))
	assert.Len(t, got, 2)
}
