// Package mathutil holds the handful of integer helpers the rest of
// this repository needs for overflow-checked counters and chunked
// output, trimmed from the teacher's broader integer-helper package down
// to what is actually exercised here.
package mathutil

import "math/bits"

// SafeAdd returns x+y and reports whether the addition overflowed
// uint64. Used to flag (not silently swallow) a counter that would wrap
// — the monotonic sequences in SUBSPACE_COUNTER are never supposed to.
func SafeAdd(x, y uint64) (sum uint64, overflow bool) {
	sum, carryOut := bits.Add64(x, y, 0)
	return sum, carryOut != 0
}

// CeilDiv returns ceil(x/y), or 0 if y is 0.
func CeilDiv(x, y int) int {
	if y == 0 {
		return 0
	}
	return (x + y - 1) / y
}
