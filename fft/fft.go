// Package fft implements the in-place radix-2 Cooley-Tukey transform over a
// prime field, in a sequential and a data-parallel variant. Both variants have
// the same observable behaviour.
//
// The transform maps a buffer of polynomial coefficients to the polynomial's
// values at the powers of the supplied root of unity. Passing the inverse root
// gives the unnormalized inverse transform; the caller is responsible for
// scaling the output by 1/n.
package fft

import (
	"fmt"
	"math/big"

	"github.com/huyuguang/libfqfft/field"
	"github.com/huyuguang/libfqfft/internal/utils"
)

// Transform computes, in place, the evaluations of the polynomial with
// coefficients a at the points w^0, .., w^(n-1), where n == len(a).
//
// n must be a power of two and w a primitive n-th root of unity.
func Transform[E any, PE field.Element[E]](a []E, w E) error {
	n := uint64(len(a))
	if !utils.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: buffer has length %d", ErrNotPowerOfTwo, n)
	}
	transform[E, PE](a, w)
	return nil
}

// transform is [Transform] without the size check. Callers must pass a buffer
// whose length is a power of two.
func transform[E any, PE field.Element[E]](a []E, w E) {
	n := uint64(len(a))
	logn := utils.Log2Floor(n)

	// Swap entries into bit-reversed order so the butterfly stages below can
	// combine adjacent blocks.
	for k := uint64(0); k < n; k++ {
		rk := utils.BitReverseInt(k, n)
		if k < rk {
			a[k], a[rk] = a[rk], a[k]
		}
	}

	var wm, t E
	for s := uint64(1); s <= logn; s++ {
		// Butterflies at this stage span m elements and combine blocks of 2m.
		m := uint64(1) << (s - 1)
		PE(&wm).Exp(w, new(big.Int).SetUint64(n/(2*m)))
		for k := uint64(0); k < n; k += 2 * m {
			var twiddle E
			PE(&twiddle).SetOne()
			for j := uint64(0); j < m; j++ {
				PE(&t).Mul(&twiddle, &a[k+j+m])
				PE(&a[k+j+m]).Sub(&a[k+j], &t)
				PE(&a[k+j]).Add(&a[k+j], &t)
				PE(&twiddle).Mul(&twiddle, &wm)
			}
		}
	}
}
