// Package bitmapidx is a compressed, in-memory cache of document-id sets
// keyed by the serialized form of a kv.BitmapKey: one roaring bitmap per
// distinct (subspace, bitmap-key-without-document-id) posting list. It
// sits above memkv (or any kv.Key-addressable store) as an index
// accelerator, never as a source of truth — the underlying store, not
// this cache, owns the data.
package bitmapidx

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/stalwartlabs/storekey/kv"
)

// Cache holds one roaring.Bitmap of document ids per posting-list key.
// The posting-list key is the serialized BitmapKey with DocumentID held
// at zero — every document id that ever shares that prefix folds into
// the same bitmap, keyed by the bytes that precede it in the encoding.
type Cache struct {
	mu    sync.RWMutex
	lists map[string]*roaring.Bitmap
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{lists: make(map[string]*roaring.Bitmap)}
}

// postingKey returns the cache key for k: its serialized form with
// DocumentID zeroed, so every document sharing k's other fields maps to
// the same posting list.
func postingKey(k kv.BitmapKey) string {
	zeroed := k
	zeroed.DocumentID = 0
	return string(zeroed.Serialize(kv.WithSubspace))
}

// Add records documentID as present in k's posting list.
func (c *Cache) Add(k kv.BitmapKey, documentID uint32) {
	pk := postingKey(k)
	c.mu.Lock()
	defer c.mu.Unlock()
	bm, ok := c.lists[pk]
	if !ok {
		bm = roaring.New()
		c.lists[pk] = bm
	}
	bm.Add(documentID)
}

// Remove records documentID as absent from k's posting list.
func (c *Cache) Remove(k kv.BitmapKey, documentID uint32) {
	pk := postingKey(k)
	c.mu.Lock()
	defer c.mu.Unlock()
	if bm, ok := c.lists[pk]; ok {
		bm.Remove(documentID)
	}
}

// Documents returns the document-id set addressed by k (ignoring k's own
// DocumentID field), or an empty bitmap if nothing has been recorded.
func (c *Cache) Documents(k kv.BitmapKey) *roaring.Bitmap {
	pk := postingKey(k)
	c.mu.RLock()
	defer c.mu.RUnlock()
	if bm, ok := c.lists[pk]; ok {
		return bm.Clone()
	}
	return roaring.New()
}

// Intersect returns the set of document ids present in every one of ks'
// posting lists — the core operation behind a multi-term/multi-tag
// lookup (e.g. "field=3 AND tag=urgent AND contains token X").
func (c *Cache) Intersect(ks ...kv.BitmapKey) *roaring.Bitmap {
	if len(ks) == 0 {
		return roaring.New()
	}
	result := c.Documents(ks[0])
	for _, k := range ks[1:] {
		result = roaring.And(result, c.Documents(k))
	}
	return result
}
