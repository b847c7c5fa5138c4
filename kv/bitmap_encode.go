package kv

import "github.com/stalwartlabs/storekey/common/leb128"

// subspaceForBitmap resolves a BitmapClass variant to its subspace.
// Unlike ValueClass, every bitmap variant's subspace is fixed by its own
// type alone (no collection dependency).
func subspaceForBitmap(class BitmapClass) Subspace {
	switch class.(type) {
	case DocumentIdsBitmap:
		return SubspaceBitmapID
	case TagBitmap:
		return SubspaceBitmapTag
	case TextBitmap:
		return SubspaceBitmapText
	default:
		panic("kv: unrecognized BitmapClass variant")
	}
}

func serializedSizeBitmap(class BitmapClass) int {
	switch c := class.(type) {
	case DocumentIdsBitmap:
		return U32Len + 1 + U32Len
	case TagBitmap:
		n := U32Len + 1 + 1
		switch v := c.Value.(type) {
		case IDTagValue:
			n += leb128.SizeUint64(v.ID)
		case TextTagValue:
			n += len(v.Text)
		}
		return n + U32Len
	case TextBitmap:
		n := U32Len + len(c.Token.TruncatedPrefix())
		if c.Token.IsLong() {
			n++
		}
		return n + 1 + 1 + U32Len
	default:
		panic("kv: unrecognized BitmapClass variant")
	}
}

// serializeBitmap writes class's encoding per spec.md §3.2: the Tag
// variant's field byte carries the high-bit discriminator between an id
// value (LEB128) and a text value (raw bytes); the Text variant reuses
// the same truncated-hash-plus-length-byte rule as ValueClass's FtsIndex.
func serializeBitmap(accountID uint32, collection uint8, documentID uint32, class BitmapClass, flags Flags) []byte {
	size := serializedSizeBitmap(class)
	capacity := size
	if flags&WithSubspace != 0 {
		capacity++
	}
	s := NewSerializer(capacity)
	if flags&WithSubspace != 0 {
		s.WriteByte(byte(subspaceForBitmap(class)))
	}

	switch c := class.(type) {
	case DocumentIdsBitmap:
		s.WriteU32(accountID).WriteByte(collection).WriteU32(documentID)
	case TagBitmap:
		switch v := c.Value.(type) {
		case IDTagValue:
			s.WriteU32(accountID).WriteByte(collection).WriteByte(c.Field).WriteLeb128(v.ID)
		case TextTagValue:
			s.WriteU32(accountID).WriteByte(collection).WriteByte(c.Field | 0x80).WriteBytes(v.Text)
		}
		s.WriteU32(documentID)
	case TextBitmap:
		s.WriteU32(accountID).WriteBytes(c.Token.TruncatedPrefix())
		if c.Token.IsLong() {
			s.WriteByte(c.Token.LenByte())
		}
		s.WriteByte(collection).WriteByte(c.Field).WriteU32(documentID)
	default:
		panic("kv: unrecognized BitmapClass variant")
	}
	return s.Finalize()
}
