package memkv

import (
	"bytes"
	"sync"

	"github.com/google/btree"
	"go.uber.org/zap"

	"github.com/stalwartlabs/storekey/common/mathutil"
)

// entry is the btree.Item stored for each key. Ordering is purely
// byte-lexicographic, matching the ordering guarantees the kv package's
// serialized keys are built to satisfy.
type entry struct {
	key   []byte
	value []byte
}

func (e *entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(*entry).key) < 0
}

// Engine is a minimal ordered-key store satisfying the downward
// interface spec.md §6.1 describes: point get/put/delete, range scan,
// and atomic add for counter keys. A single mutex guards the whole tree;
// this is a reference/test double, not a concurrent production engine.
type Engine struct {
	mu   sync.Mutex
	tree *btree.BTree
	log  *zap.Logger
}

// NewEngine constructs an empty Engine. A nil logger disables logging
// (the zap.Logger "nop" convention used throughout the teacher's cmd/
// tools).
func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{tree: btree.New(32), log: log}
}

// Get returns the value stored at key, and false if there is none.
func (e *Engine) Get(key []byte) ([]byte, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	item := e.tree.Get(&entry{key: key})
	if item == nil {
		return nil, false
	}
	return item.(*entry).value, true
}

// Put stores value at key, overwriting any prior value.
func (e *Engine) Put(key, value []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tree.ReplaceOrInsert(&entry{key: key, value: value})
	e.log.Debug("put", zap.Int("key_len", len(key)), zap.Int("value_len", len(value)))
}

// Delete removes key, if present.
func (e *Engine) Delete(key []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tree.Delete(&entry{key: key})
}

// KV is one row returned by Scan.
type KV struct {
	Key   []byte
	Value []byte
}

// Scan returns every entry in [from, to) in ascending key order, per
// spec.md §6.1's range-scan contract. Callers building a prefix scan
// (e.g. over an IndexKeyPrefix) pass the prefix's successor as to.
func (e *Engine) Scan(from, to []byte) []KV {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []KV
	e.tree.AscendRange(&entry{key: from}, &entry{key: to}, func(item btree.Item) bool {
		it := item.(*entry)
		out = append(out, KV{Key: it.key, Value: it.value})
		return true
	})
	return out
}

// ScanAll returns every entry in the engine in ascending key order.
func (e *Engine) ScanAll() []KV {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []KV
	e.tree.Ascend(func(item btree.Item) bool {
		it := item.(*entry)
		out = append(out, KV{Key: it.key, Value: it.value})
		return true
	})
	return out
}

// Add atomically increments the counter stored at key by delta,
// treating an absent key as zero, and returns the new value. Callers
// must route here — not through Get+Put — for any kv.ValueKey whose
// IsCounter() is true, per spec.md §3.4/§4.3. An increment that takes
// the counter past the int64 maximum is logged as a warning; the stored
// value still wraps.
func (e *Engine) Add(key []byte, delta int64) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	var current int64
	if item := e.tree.Get(&entry{key: key}); item != nil {
		current = decodeCounter(item.(*entry).value)
	}
	if delta > 0 && current >= 0 {
		if sum, overflow := mathutil.SafeAdd(uint64(current), uint64(delta)); overflow || sum > 1<<63-1 {
			e.log.Warn("counter increment overflows int64",
				zap.Binary("key", key), zap.Int64("current", current), zap.Int64("delta", delta))
		}
	}
	next := current + delta
	e.tree.ReplaceOrInsert(&entry{key: key, value: encodeCounter(next)})
	return next
}

func encodeCounter(v int64) []byte {
	b := make([]byte, 8)
	u := uint64(v)
	for i := 7; i >= 0; i-- {
		b[i] = byte(u)
		u >>= 8
	}
	return b
}

func decodeCounter(b []byte) int64 {
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}
	return int64(u)
}

// PrefixUpperBound returns the smallest byte string that sorts strictly
// after every string with the given prefix, for use as the exclusive
// upper bound of a prefix scan. It returns nil if prefix is all 0xFF
// bytes (no such bound exists; callers should scan to the end instead).
func PrefixUpperBound(prefix []byte) []byte {
	bound := make([]byte, len(prefix))
	copy(bound, prefix)
	for i := len(bound) - 1; i >= 0; i-- {
		if bound[i] < 0xFF {
			bound[i]++
			return bound[:i+1]
		}
	}
	return nil
}
