package kv

// BitmapKey addresses a posting-list record. It mirrors ValueKey's shape
// (common scalars plus a class) but is its own concrete type rather than
// a shared generic, per the design note in spec.md §9: the two wrapper
// types carry no common behavior worth a shared parameterized type, only
// a shared shape.
type BitmapKey struct {
	AccountID  uint32
	Collection uint8
	DocumentID uint32
	Class      BitmapClass
}

// NewBitmapKey builds a BitmapKey from its four constituent parts.
func NewBitmapKey(accountID uint32, collection uint8, documentID uint32, class BitmapClass) BitmapKey {
	return BitmapKey{AccountID: accountID, Collection: collection, DocumentID: documentID, Class: class}
}

// Subspace returns the subspace k.Class routes to.
func (k BitmapKey) Subspace() Subspace {
	return subspaceForBitmap(k.Class)
}

// Serialize encodes k per spec.md §3.2, optionally prefixed with the
// subspace byte.
func (k BitmapKey) Serialize(flags Flags) []byte {
	return serializeBitmap(k.AccountID, k.Collection, k.DocumentID, k.Class, flags)
}

// SerializedSize returns k's encoded length excluding any subspace-prefix
// byte.
func (k BitmapKey) SerializedSize() int {
	return serializedSizeBitmap(k.Class)
}
