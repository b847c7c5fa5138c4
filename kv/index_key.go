package kv

// IndexKeyPrefix addresses every IndexKey sharing the same
// (account, collection, field) — it is the range-scan prefix for a
// sorted index, never a record on its own.
type IndexKeyPrefix struct {
	AccountID  uint32
	Collection uint8
	Field      uint8
}

func (k IndexKeyPrefix) Subspace() Subspace { return SubspaceIndexes }

func (k IndexKeyPrefix) SerializedSize() int {
	return U32Len + 1 + 1
}

func (k IndexKeyPrefix) Serialize(flags Flags) []byte {
	capacity := k.SerializedSize()
	if flags&WithSubspace != 0 {
		capacity++
	}
	s := NewSerializer(capacity)
	if flags&WithSubspace != 0 {
		s.WriteByte(byte(SubspaceIndexes))
	}
	s.WriteU32(k.AccountID).WriteByte(k.Collection).WriteByte(k.Field)
	return s.Finalize()
}

// IndexKey addresses a single sorted-index row: an indexed field's raw
// sort key, disambiguated by the document it belongs to. Its prefix
// (account_id, collection, field) is byte-identical to the encoding of
// the matching IndexKeyPrefix, by construction (spec.md P4).
type IndexKey struct {
	AccountID  uint32
	Collection uint8
	Field      uint8
	KeyBytes   []byte
	DocumentID uint32
}

func (k IndexKey) Subspace() Subspace { return SubspaceIndexes }

func (k IndexKey) SerializedSize() int {
	return U32Len + 1 + 1 + len(k.KeyBytes) + U32Len
}

func (k IndexKey) Serialize(flags Flags) []byte {
	capacity := k.SerializedSize()
	if flags&WithSubspace != 0 {
		capacity++
	}
	s := NewSerializer(capacity)
	if flags&WithSubspace != 0 {
		s.WriteByte(byte(SubspaceIndexes))
	}
	s.WriteU32(k.AccountID).WriteByte(k.Collection).WriteByte(k.Field).
		WriteBytes(k.KeyBytes).WriteU32(k.DocumentID)
	return s.Finalize()
}

// Prefix returns the IndexKeyPrefix that every serialization of k starts
// with.
func (k IndexKey) Prefix() IndexKeyPrefix {
	return IndexKeyPrefix{AccountID: k.AccountID, Collection: k.Collection, Field: k.Field}
}
