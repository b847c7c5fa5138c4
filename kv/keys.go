package kv

// Flags control how a Key serializes. WithSubspace is the only flag
// currently recognized: it prefixes the encoding with the key's
// subspace byte and preallocates one extra byte for it.
type Flags uint32

const (
	WithSubspace Flags = 1 << iota
)

// Fixed width, in bytes, of the big-endian integer types the encoder
// writes. Named the way the teacher's integer helpers are (see
// common/math), and used throughout this package to preallocate buffers.
const (
	U16Len = 2
	U32Len = 4
	U64Len = 8
)

// Key is satisfied by every key class in this package: it knows its own
// subspace and how to serialize itself under the given flags.
type Key interface {
	Subspace() Subspace
	Serialize(flags Flags) []byte
}

// SerializedSizer is implemented by key classes whose encoded length is
// knowable ahead of the subspace-prefix byte, so callers (and the
// encoder itself) can preallocate exactly.
type SerializedSizer interface {
	SerializedSize() int
}
