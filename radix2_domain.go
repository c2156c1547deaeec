package libfqfft

import (
	"fmt"
	"math/big"

	"github.com/huyuguang/libfqfft/field"
	"github.com/huyuguang/libfqfft/fft"
)

// Radix2Domain is an evaluation domain of size m = 2^k whose points are the
// m-th roots of unity: point i is omega^i for a primitive m-th root omega.
type Radix2Domain[E any, PE field.Element[E]] struct {
	fld field.Field[E]

	m        uint64
	mInv     E
	omega    E
	omegaInv E

	numGoRoutines int
}

// NewRadix2Domain returns a radix-2 domain of size exactly m.
//
// Construction fails with ErrInvalidSize if m < 2, and with
// field.ErrRootOfUnityUnavailable if m is not a power of two or exceeds the
// field's two-adic subgroup.
func NewRadix2Domain[E any, PE field.Element[E]](fld field.Field[E], m uint64, opts ...DomainOption) (*Radix2Domain[E, PE], error) {
	if m <= 1 {
		return nil, fmt.Errorf("%w: radix-2 domain needs at least 2 points, got %d", ErrInvalidSize, m)
	}
	omega, err := fld.RootOfUnity(m)
	if err != nil {
		return nil, fmt.Errorf("radix-2 domain of size %d: %w", m, err)
	}

	cfg := newDomainConfig(opts)
	d := &Radix2Domain[E, PE]{
		fld:           fld,
		m:             m,
		omega:         omega,
		numGoRoutines: cfg.numGoRoutines,
	}
	PE(&d.omegaInv).Inverse(&omega)
	PE(&d.mInv).SetUint64(m)
	PE(&d.mInv).Inverse(&d.mInv)
	return d, nil
}

// TryNewRadix2Domain is the non-failing form of NewRadix2Domain: it reports
// only whether construction succeeded, which is what the family-selection
// ladder in GetEvaluationDomain needs.
func TryNewRadix2Domain[E any, PE field.Element[E]](fld field.Field[E], m uint64, opts ...DomainOption) (*Radix2Domain[E, PE], bool) {
	d, err := NewRadix2Domain[E, PE](fld, m, opts...)
	if err != nil {
		return nil, false
	}
	return d, true
}

// Size returns the number of points in the domain.
func (d *Radix2Domain[E, PE]) Size() uint64 {
	return d.m
}

// FFT evaluates the coefficients in a at every domain point, in place.
func (d *Radix2Domain[E, PE]) FFT(a []E) error {
	if err := checkLength(d.m, uint64(len(a))); err != nil {
		return err
	}
	if d.numGoRoutines > 1 {
		return fft.TransformParallel[E, PE](a, d.omega, d.numGoRoutines)
	}
	return fft.Transform[E, PE](a, d.omega)
}

// IFFT interpolates the values in a back to coefficients, in place: a butterfly
// pass with the inverse root followed by scaling every entry by 1/m.
func (d *Radix2Domain[E, PE]) IFFT(a []E) error {
	if err := checkLength(d.m, uint64(len(a))); err != nil {
		return err
	}
	var err error
	if d.numGoRoutines > 1 {
		err = fft.TransformParallel[E, PE](a, d.omegaInv, d.numGoRoutines)
	} else {
		err = fft.Transform[E, PE](a, d.omegaInv)
	}
	if err != nil {
		return err
	}
	for i := range a {
		PE(&a[i]).Mul(&a[i], &d.mInv)
	}
	return nil
}

// CosetFFT evaluates the coefficients in a over the coset g*domain, in place.
func (d *Radix2Domain[E, PE]) CosetFFT(a []E, g E) error {
	if err := checkLength(d.m, uint64(len(a))); err != nil {
		return err
	}
	multiplyByCoset[E, PE](a, g)
	return d.FFT(a)
}

// CosetIFFT interpolates values over the coset g*domain back to coefficients,
// in place.
func (d *Radix2Domain[E, PE]) CosetIFFT(a []E, g E) error {
	if err := checkLength(d.m, uint64(len(a))); err != nil {
		return err
	}
	if err := d.IFFT(a); err != nil {
		return err
	}
	var gInv E
	PE(&gInv).Inverse(&g)
	multiplyByCoset[E, PE](a, gInv)
	return nil
}

// EvaluateAllLagrangePolynomials returns the values at t of the m Lagrange
// basis polynomials of the domain.
func (d *Radix2Domain[E, PE]) EvaluateAllLagrangePolynomials(t E) ([]E, error) {
	return evaluateAllLagrangePolynomials[E, PE](d.fld, d.m, t)
}

// Element returns omega^idx.
func (d *Radix2Domain[E, PE]) Element(idx uint64) (E, error) {
	var r E
	if idx >= d.m {
		return r, fmt.Errorf("%w: index %d, domain size %d", ErrIndexOutOfRange, idx, d.m)
	}
	PE(&r).Exp(d.omega, new(big.Int).SetUint64(idx))
	return r, nil
}

// EvaluateVanishingPolynomial returns t^m - 1, which is zero exactly on the
// domain points.
func (d *Radix2Domain[E, PE]) EvaluateVanishingPolynomial(t E) E {
	var r, one E
	PE(&one).SetOne()
	PE(&r).Exp(t, new(big.Int).SetUint64(d.m))
	PE(&r).Sub(&r, &one)
	return r
}

// AddVanishingPolynomial adds coeff*(x^m - 1) to the coefficient buffer h,
// which must have length m+1.
func (d *Radix2Domain[E, PE]) AddVanishingPolynomial(coeff E, h []E) error {
	if err := checkLength(d.m+1, uint64(len(h))); err != nil {
		return err
	}
	PE(&h[d.m]).Add(&h[d.m], &coeff)
	PE(&h[0]).Sub(&h[0], &coeff)
	return nil
}

// DivideByVanishingPolynomialOnCoset divides values on the coset
// generator*domain by the vanishing polynomial. On that coset the vanishing
// polynomial is the constant generator^m - 1, so this is a single scalar
// multiplication across the buffer.
func (d *Radix2Domain[E, PE]) DivideByVanishingPolynomialOnCoset(a []E) error {
	if err := checkLength(d.m, uint64(len(a))); err != nil {
		return err
	}
	zInv := d.EvaluateVanishingPolynomial(d.fld.MultiplicativeGenerator())
	PE(&zInv).Inverse(&zInv)
	for i := range a {
		PE(&a[i]).Mul(&a[i], &zInv)
	}
	return nil
}
