package kv

import "github.com/stalwartlabs/storekey/common/leb128"

// Serializer is an append-only byte buffer with typed writers for the
// fixed-width big-endian integers, raw byte slices, and LEB128 values
// that make up every key class's encoding. It is infallible: every
// input is statically typed, so there is nothing to fail on.
//
// A Serializer has a single writer and is not safe for concurrent use;
// that matches every other value type in this package (see spec.md §5).
type Serializer struct {
	buf []byte
}

// NewSerializer allocates a Serializer whose backing buffer has the
// given capacity. Callers should size this from a key class's
// SerializedSize, plus one byte if WithSubspace will be set.
func NewSerializer(capacity int) *Serializer {
	return &Serializer{buf: make([]byte, 0, capacity)}
}

// WriteByte appends a single byte.
func (s *Serializer) WriteByte(v byte) *Serializer {
	s.buf = append(s.buf, v)
	return s
}

// WriteU16 appends v as two big-endian bytes.
func (s *Serializer) WriteU16(v uint16) *Serializer {
	s.buf = append(s.buf, byte(v>>8), byte(v))
	return s
}

// WriteU32 appends v as four big-endian bytes.
func (s *Serializer) WriteU32(v uint32) *Serializer {
	s.buf = append(s.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	return s
}

// WriteU64 appends v as eight big-endian bytes.
func (s *Serializer) WriteU64(v uint64) *Serializer {
	s.buf = append(s.buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	return s
}

// WriteBytes appends raw bytes verbatim (opaque components: names,
// emails, tokens, config keys).
func (s *Serializer) WriteBytes(v []byte) *Serializer {
	s.buf = append(s.buf, v...)
	return s
}

// WriteString appends the UTF-8 bytes of v verbatim.
func (s *Serializer) WriteString(v string) *Serializer {
	s.buf = append(s.buf, v...)
	return s
}

// WriteLeb128 appends v as an unsigned LEB128 varint, for compact
// identifiers that don't need to be range-scannable.
func (s *Serializer) WriteLeb128(v uint64) *Serializer {
	s.buf = leb128.AppendUint64(s.buf, v)
	return s
}

// Finalize returns the accumulated buffer. The Serializer must not be
// reused afterwards.
func (s *Serializer) Finalize() []byte {
	return s.buf
}
