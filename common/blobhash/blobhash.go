// Copyright 2020 Stalwart Labs LLC <hello@stalw.art>
// This file is part of storekey.

// Package blobhash holds the fixed-size hash value types shared by the
// blob store and the key layer's full-text and bitmap-text indices.
package blobhash

// Len is the width, in bytes, of a full blob hash (as produced by the
// blob store's content hash). The key layer only ever needs a prefix of
// this, see TokenHash.
const Len = 32

// Hash is an opaque, fixed-size content hash identifying a blob.
type Hash [Len]byte

// TokenHash is a hash of a text token (a full-text index term, or a
// bitmap tag's text value) together with its true length. The key
// encoder only stores the first min(Len, 8) bytes of Hash, appending the
// true length as a single disambiguator byte when it is truncated — see
// TruncatedPrefix. Len is a byte because it is written verbatim as the
// disambiguator; token lengths beyond 255 all collapse to the same
// marker, which only matters for ordering within an already-truncated
// (and therefore already lossy) 8-byte prefix.
type TokenHash struct {
	Hash Hash
	Len  uint8
}

// TruncatedPrefix returns the bytes the key encoder writes for this
// token hash: the first min(Len, 8) raw bytes, following the truncation
// rule in spec.md §3.2. It never returns more than 8 bytes.
func (t TokenHash) TruncatedPrefix() []byte {
	n := int(t.Len)
	if n > 8 {
		n = 8
	}
	if n > len(t.Hash) {
		n = len(t.Hash)
	}
	return t.Hash[:n]
}

// LenByte returns the raw disambiguator byte appended after the
// truncated prefix when IsLong is true.
func (t TokenHash) LenByte() byte {
	return t.Len
}

// IsLong reports whether the original token length requires the
// length-disambiguator byte to be appended after the truncated prefix.
func (t TokenHash) IsLong() bool {
	return t.Len >= 8
}
