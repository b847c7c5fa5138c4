package kv

import (
	"fmt"

	"github.com/pkg/errors"
)

// DataCorruption is returned by every decode path in this package when
// the input is short, misaligned, or otherwise not a valid encoding of
// the type being read. It is not retryable: it indicates an engine or
// schema bug, not a transient condition (spec.md §7).
type DataCorruption struct {
	// Key is the full byte slice the caller was trying to decode.
	Key []byte
	// Offset is the byte position the read that failed started at.
	Offset int
	// Reason is a short human-readable description of what went wrong.
	Reason string
	stack  error
}

func (e *DataCorruption) Error() string {
	return fmt.Sprintf("data corruption at offset %d: %s (key=%x)", e.Offset, e.Reason, e.Key)
}

func (e *DataCorruption) Unwrap() error {
	return e.stack
}

func newDataCorruption(key []byte, offset int, reason string) *DataCorruption {
	return &DataCorruption{
		Key:    key,
		Offset: offset,
		Reason: reason,
		stack:  errors.Errorf("data corruption at offset %d: %s", offset, reason),
	}
}

// LogicError marks a construction-time invariant violation: the caller
// asked for an encoding that cannot be represented losslessly. Unlike
// DataCorruption this never comes from untrusted bytes — it is a
// programmer bug caught at the boundary, per spec.md §7.
type LogicError struct {
	msg   string
	stack error
}

func (e *LogicError) Error() string { return e.msg }
func (e *LogicError) Unwrap() error { return e.stack }

func errFieldHighBitReserved(field uint8) error {
	msg := errors.Errorf("bitmap tag field %#x has reserved high bit set (must be <= 0x7F)", field)
	return &LogicError{msg: msg.Error(), stack: msg}
}
