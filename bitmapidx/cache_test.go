package bitmapidx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stalwartlabs/storekey/kv"
)

func TestAddRemoveDocuments(t *testing.T) {
	c := New()
	k := kv.NewBitmapKey(1, 2, 0, kv.DocumentIdsBitmap{})

	assert.True(t, c.Documents(k).IsEmpty())

	c.Add(k, 10)
	c.Add(k, 20)
	bm := c.Documents(k)
	assert.True(t, bm.Contains(10))
	assert.True(t, bm.Contains(20))
	assert.Equal(t, uint64(2), bm.GetCardinality())

	c.Remove(k, 10)
	bm = c.Documents(k)
	assert.False(t, bm.Contains(10))
	assert.True(t, bm.Contains(20))
}

func TestDocumentIDFieldIgnoredForPostingKey(t *testing.T) {
	c := New()
	k1 := kv.NewBitmapKey(1, 2, 5, kv.DocumentIdsBitmap{})
	k2 := kv.NewBitmapKey(1, 2, 999, kv.DocumentIdsBitmap{})

	c.Add(k1, 42)
	assert.True(t, c.Documents(k2).Contains(42))
}

func TestIntersect(t *testing.T) {
	c := New()
	k1 := kv.NewBitmapKey(1, 2, 0, kv.DocumentIdsBitmap{})
	tag, err := kv.NewTagBitmap(3, kv.TextTagValue{Text: []byte("urgent")})
	assert.NoError(t, err)
	k2 := kv.NewBitmapKey(1, 2, 0, tag)

	c.Add(k1, 1)
	c.Add(k1, 2)
	c.Add(k1, 3)
	c.Add(k2, 2)
	c.Add(k2, 3)
	c.Add(k2, 4)

	result := c.Intersect(k1, k2)
	assert.Equal(t, []uint32{2, 3}, result.ToArray())
}

func TestIntersectEmptyInput(t *testing.T) {
	c := New()
	assert.True(t, c.Intersect().IsEmpty())
}
