package kv

// AnyKey is the escape hatch for callers that need to address a raw byte
// key in a caller-chosen subspace, bypassing every routing rule the
// other key classes enforce. Storage adapters generic over Key accept it
// like any other class; nothing downstream can tell it apart from a
// "real" key class once serialized.
type AnyKey struct {
	SubspaceTag Subspace
	KeyBytes    []byte
}

func (k AnyKey) Subspace() Subspace { return k.SubspaceTag }

func (k AnyKey) SerializedSize() int { return len(k.KeyBytes) }

func (k AnyKey) Serialize(flags Flags) []byte {
	capacity := len(k.KeyBytes)
	if flags&WithSubspace != 0 {
		capacity++
	}
	s := NewSerializer(capacity)
	if flags&WithSubspace != 0 {
		s.WriteByte(byte(k.SubspaceTag))
	}
	s.WriteBytes(k.KeyBytes)
	return s.Finalize()
}
