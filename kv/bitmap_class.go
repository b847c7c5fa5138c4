package kv

import "github.com/stalwartlabs/storekey/common/blobhash"

// BitmapClass is the tagged union of bitmap-index lookups: the posting
// lists that back document-id sets, tag sets, and full-text term sets.
// It is kept separate from ValueClass (rather than folded in as more
// variants) because each bitmap variant has its own BITMAP_* subspace,
// and because its Tag encoding reserves a high bit as a discriminator
// that no other class uses.
type BitmapClass interface {
	bitmapClass()
}

// DocumentIdsBitmap addresses the full document-id set of a collection.
type DocumentIdsBitmap struct{}

func (DocumentIdsBitmap) bitmapClass() {}

// TagValue is the tagged union of a tag's value: either a numeric id or
// free text. Which one is in play is encoded in the high bit of the
// field byte (see serializeBitmap), not carried alongside the value.
type TagValue interface {
	tagValue()
}

// IDTagValue is a numeric tag value, LEB128-encoded.
type IDTagValue struct{ ID uint64 }

func (IDTagValue) tagValue() {}

// TextTagValue is a free-text tag value, written raw.
type TextTagValue struct{ Text []byte }

func (TextTagValue) tagValue() {}

// TagBitmap addresses the posting list for one tag value on one field.
// Field must fit in 0..=0x7F: the high bit is reserved to discriminate
// TextTagValue from IDTagValue on the wire (spec.md §3.2). Construct
// through NewTagBitmap rather than the struct literal so that invariant
// is checked once, at the boundary.
type TagBitmap struct {
	Field uint8
	Value TagValue
}

func (TagBitmap) bitmapClass() {}

// NewTagBitmap builds a TagBitmap, rejecting field values whose high bit
// is already set — those would collide with the TextTagValue
// discriminator and silently corrupt the key (spec.md §7).
func NewTagBitmap(field uint8, value TagValue) (TagBitmap, error) {
	if field&0x80 != 0 {
		return TagBitmap{}, errFieldHighBitReserved(field)
	}
	return TagBitmap{Field: field, Value: value}, nil
}

// TextBitmap addresses the posting list for a full-text index term on a
// field, keyed by the term's truncated token hash.
type TextBitmap struct {
	Field uint8
	Token blobhash.TokenHash
}

func (TextBitmap) bitmapClass() {}
