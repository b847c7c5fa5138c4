package kv

// LogKey addresses one entry in an account's change log: a monotonic
// change_id within (account_id, collection).
type LogKey struct {
	AccountID  uint32
	Collection uint8
	ChangeID   uint64
}

func (k LogKey) Subspace() Subspace { return SubspaceLogs }

func (k LogKey) SerializedSize() int {
	return U32Len + 1 + U64Len
}

func (k LogKey) Serialize(flags Flags) []byte {
	capacity := k.SerializedSize()
	if flags&WithSubspace != 0 {
		capacity++
	}
	s := NewSerializer(capacity)
	if flags&WithSubspace != 0 {
		s.WriteByte(byte(SubspaceLogs))
	}
	s.WriteU32(k.AccountID).WriteByte(k.Collection).WriteU64(k.ChangeID)
	return s.Finalize()
}
