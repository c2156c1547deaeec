// Package libfqfft converts polynomials over a prime field between coefficient
// form and evaluation form over structured point sets ("evaluation domains"),
// using FFT techniques specialized to fields.
//
// The two in-repo domain families are [Radix2Domain], whose points are the
// 2^k-th roots of unity, and [StepRadix2Domain], whose size is a sum of two
// distinct powers of two. [GetEvaluationDomain] picks the cheapest family that
// can represent a requested minimum size, with hooks for externally
// implemented sibling families.
//
// All transforms mutate caller-owned buffers in place; the package-level
// [FFT], [IFFT], [CosetFFT] and [CosetIFFT] helpers clone first for callers
// that want to keep their input.
package libfqfft

import (
	"fmt"

	"github.com/huyuguang/libfqfft/field"
)

// EvaluationDomain is a fixed set of m field points over which a polynomial of
// degree below m can be represented by its values instead of its coefficients.
//
// Implementations are immutable once constructed and safe for concurrent use,
// as long as concurrent calls do not share a buffer.
type EvaluationDomain[E any] interface {
	// Size returns m, the number of points in the domain.
	Size() uint64

	// FFT replaces the coefficients in a with the polynomial's values at the
	// domain points. len(a) must be exactly Size.
	FFT(a []E) error

	// IFFT replaces the values in a with the coefficients of the interpolating
	// polynomial. len(a) must be exactly Size.
	IFFT(a []E) error

	// CosetFFT evaluates over the coset g*domain: it shifts the coefficients
	// by powers of g, then runs FFT. len(a) must be exactly Size.
	CosetFFT(a []E, g E) error

	// CosetIFFT inverts CosetFFT: it runs IFFT, then unshifts the coefficients
	// by powers of 1/g. len(a) must be exactly Size.
	CosetIFFT(a []E, g E) error

	// EvaluateAllLagrangePolynomials returns the values at t of all Size
	// Lagrange basis polynomials of the domain.
	EvaluateAllLagrangePolynomials(t E) ([]E, error)

	// Element returns the idx-th domain point. idx must be below Size.
	Element(idx uint64) (E, error)

	// EvaluateVanishingPolynomial evaluates at t the monic polynomial whose
	// roots are exactly the domain points.
	EvaluateVanishingPolynomial(t E) E

	// AddVanishingPolynomial adds coeff times the vanishing polynomial to the
	// coefficient buffer h. len(h) must be exactly Size+1.
	AddVanishingPolynomial(coeff E, h []E) error

	// DivideByVanishingPolynomialOnCoset divides, entry by entry, values on
	// the coset generator*domain by the vanishing polynomial evaluated at the
	// same points. len(a) must be exactly Size.
	DivideByVanishingPolynomialOnCoset(a []E) error
}

// multiplyByCoset scales a[i] by g^i. The loop starts at index 1: entry 0 is
// scaled by g^0 == 1 and keeps its value.
func multiplyByCoset[E any, PE field.Element[E]](a []E, g E) {
	u := g
	for i := 1; i < len(a); i++ {
		PE(&a[i]).Mul(&a[i], &u)
		PE(&u).Mul(&u, &g)
	}
}

// checkLength returns ErrBufferSizeMismatch unless got == want.
func checkLength(want, got uint64) error {
	if got != want {
		return fmt.Errorf("%w: need %d, got %d", ErrBufferSizeMismatch, want, got)
	}
	return nil
}

// FFT returns the forward transform of values without mutating them.
func FFT[E any](d EvaluationDomain[E], values []E) ([]E, error) {
	out := make([]E, len(values))
	copy(out, values)
	if err := d.FFT(out); err != nil {
		return nil, err
	}
	return out, nil
}

// IFFT returns the inverse transform of values without mutating them.
func IFFT[E any](d EvaluationDomain[E], values []E) ([]E, error) {
	out := make([]E, len(values))
	copy(out, values)
	if err := d.IFFT(out); err != nil {
		return nil, err
	}
	return out, nil
}

// CosetFFT returns the coset forward transform of values without mutating them.
func CosetFFT[E any](d EvaluationDomain[E], values []E, g E) ([]E, error) {
	out := make([]E, len(values))
	copy(out, values)
	if err := d.CosetFFT(out, g); err != nil {
		return nil, err
	}
	return out, nil
}

// CosetIFFT returns the coset inverse transform of values without mutating them.
func CosetIFFT[E any](d EvaluationDomain[E], values []E, g E) ([]E, error) {
	out := make([]E, len(values))
	copy(out, values)
	if err := d.CosetIFFT(out, g); err != nil {
		return nil, err
	}
	return out, nil
}
