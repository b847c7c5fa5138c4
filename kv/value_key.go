package kv

// ValueKey addresses a single value-space record: the common
// account/collection/document scalars every ValueClass variant may draw
// on, plus the variant itself. Most variants ignore most of the common
// fields (a DirectoryClass lookup is fully self-contained); which fields
// a variant consumes is fixed by the table in spec.md §3.2, enforced by
// the switch in value_encode.go rather than by per-variant structs.
type ValueKey struct {
	AccountID  uint32
	Collection uint8
	DocumentID uint32
	Class      ValueClass
}

// NewValueKey builds a ValueKey from its four constituent parts. Most
// callers want one of the narrower constructors below instead.
func NewValueKey(accountID uint32, collection uint8, documentID uint32, class ValueClass) ValueKey {
	return ValueKey{AccountID: accountID, Collection: collection, DocumentID: documentID, Class: class}
}

// PropertyValueKey builds the ValueKey for a single document property.
func PropertyValueKey(accountID uint32, collection uint8, documentID uint32, field uint8) ValueKey {
	return NewValueKey(accountID, collection, documentID, PropertyClass{Field: field})
}

// Subspace returns the subspace this key routes to, resolving the one
// collection-dependent case (Property(84) on collection 1).
func (k ValueKey) Subspace() Subspace {
	return subspaceForValue(k.Class, k.Collection)
}

// Serialize encodes k per spec.md §3.2, optionally prefixed with the
// subspace byte.
func (k ValueKey) Serialize(flags Flags) []byte {
	return serializeValue(k.AccountID, k.Collection, k.DocumentID, k.Class, flags)
}

// SerializedSize returns k's encoded length excluding any subspace-prefix
// byte, so callers can preallocate exactly (spec.md §4.1).
func (k ValueKey) SerializedSize() int {
	return serializedSizeValue(k.AccountID, k.Collection, k.Class)
}

// IsCounter reports whether the KV engine must route k through its
// atomic-add primitive rather than read-modify-write (spec.md §4.3).
func (k ValueKey) IsCounter() bool {
	return isCounterForValue(k.Class, k.Collection)
}
