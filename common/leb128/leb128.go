// Copyright 2020 Stalwart Labs LLC <hello@stalw.art>
// This file is part of storekey.
//
// storekey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package leb128 implements unsigned LEB128 variable-length integer
// encoding: seven payload bits per byte, high bit set on every byte but
// the last. It favors compactness over range-scannability, unlike the
// fixed-width big-endian writers in package kv.
package leb128

// AppendUint64 appends the unsigned LEB128 encoding of v to dst and
// returns the extended slice.
func AppendUint64(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// SizeUint64 returns the number of bytes AppendUint64 would write for v,
// without allocating.
func SizeUint64(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// Uint64 decodes an unsigned LEB128 varint from the front of buf,
// returning the value and the number of bytes consumed. ok is false if
// buf ends before a terminating byte (high bit clear) is found.
func Uint64(buf []byte) (v uint64, n int, ok bool) {
	var shift uint
	for n < len(buf) {
		b := buf[n]
		n++
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, n, true
		}
		shift += 7
		if shift >= 64 {
			return 0, n, false
		}
	}
	return 0, n, false
}
