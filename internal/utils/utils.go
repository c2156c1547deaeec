// Package utils holds the small integer and power-series helpers shared by the
// transform engine and the evaluation domains.
package utils

import (
	"math/bits"

	"github.com/huyuguang/libfqfft/field"
)

// IsPowerOfTwo returns true if `value` is a power of two.
// `0` will return false.
func IsPowerOfTwo(value uint64) bool {
	return value > 0 && (value&(value-1) == 0)
}

// Log2 returns the ceiling of log2(n): the smallest k such that 2^k >= n.
// Log2(0) and Log2(1) are 0.
func Log2(n uint64) uint64 {
	if n <= 1 {
		return 0
	}
	return uint64(bits.Len64(n - 1))
}

// Log2Floor returns the largest k such that 2^k <= n. n must be non-zero.
func Log2Floor(n uint64) uint64 {
	return uint64(bits.Len64(n) - 1)
}

// BitReverseInt reverses k interpreted as a log2(bitsize)-bit integer.
// bitsize must be a power of two.
func BitReverseInt(k, bitsize uint64) uint64 {
	if !IsPowerOfTwo(bitsize) {
		panic("bitsize given to BitReverseInt must be a power of two")
	}

	// The standard library's bits.Reverse64 inverts its input as a 64-bit
	// unsigned integer. We need to invert it as a log2(bitsize)-bit integer,
	// so we correct by shifting appropriately.
	shiftCorrection := uint64(64 - bits.TrailingZeros64(bitsize))
	return bits.Reverse64(k) >> shiftCorrection
}

// ComputePowers computes x^0 to x^(n-1).
// If n==0: an empty slice is returned.
func ComputePowers[E any, PE field.Element[E]](x E, n uint) []E {
	powers := make([]E, n)
	if n == 0 {
		return powers
	}
	PE(&powers[0]).SetOne()
	for i := uint(1); i < n; i++ {
		PE(&powers[i]).Mul(&powers[i-1], &x)
	}
	return powers
}
