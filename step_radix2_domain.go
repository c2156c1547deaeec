package libfqfft

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/huyuguang/libfqfft/field"
	"github.com/huyuguang/libfqfft/fft"
	"github.com/huyuguang/libfqfft/internal/pool"
	"github.com/huyuguang/libfqfft/internal/utils"
)

// StepRadix2Domain is an evaluation domain whose size m = bigM + smallM is the
// sum of two distinct powers of two, with smallM < bigM. Geometrically the
// domain is the union of the bigM-th roots of unity and a coset of the
// smallM-th roots of unity shifted by omega, a primitive 2*bigM-th root:
//
//	point i          = bigOmega^i              for i < bigM
//	point bigM + i   = omega * smallOmega^i    for i < smallM
//
// A size-m transform splits exactly into one size-bigM and one size-smallM
// radix-2 transform plus O(m) combining work.
type StepRadix2Domain[E any, PE field.Element[E]] struct {
	fld field.Field[E]

	m      uint64
	bigM   uint64
	smallM uint64
	// compr is bigM/smallM, the number of strided segments folded together in
	// the forward transform.
	compr uint64

	omega         E // primitive 2^ceil(log2 m)-th root of unity
	omegaInv      E
	bigOmega      E // omega^2, primitive bigM-th root
	bigOmegaInv   E
	smallOmega    E // primitive smallM-th root
	smallOmegaInv E

	omegaToSmallM E // omega^smallM, a constant of the vanishing polynomial
	bigMInv       E
	smallMInv     E
	twoInv        E

	// scratch recycles the per-transform work buffers so concurrent transform
	// calls on the same domain do not contend on the allocator.
	scratch sync.Pool
}

// stepScratch carries one transform invocation's working memory: two buffers
// of length bigM and one of length smallM.
type stepScratch[E any] struct {
	big0  []E
	big1  []E
	small []E
}

// NewStepRadix2Domain returns a step-radix-2 domain of size exactly m.
//
// Writing k = ceil(log2 m), the size splits as bigM = 2^(k-1) and
// smallM = m - bigM. Construction fails with ErrInvalidSize if m < 2 or smallM
// is not a power of two below bigM, and with field.ErrRootOfUnityUnavailable
// if the field cannot supply primitive 2^k-th and smallM-th roots of unity.
func NewStepRadix2Domain[E any, PE field.Element[E]](fld field.Field[E], m uint64, opts ...DomainOption) (*StepRadix2Domain[E, PE], error) {
	if m <= 1 {
		return nil, fmt.Errorf("%w: step-radix-2 domain needs at least 2 points, got %d", ErrInvalidSize, m)
	}
	k := utils.Log2(m)
	bigM := uint64(1) << (k - 1)
	smallM := m - bigM
	if !utils.IsPowerOfTwo(smallM) || smallM >= bigM {
		return nil, fmt.Errorf("%w: step-radix-2 domain of size %d splits into %d + %d", ErrInvalidSize, m, bigM, smallM)
	}

	omega, err := fld.RootOfUnity(uint64(1) << k)
	if err != nil {
		return nil, fmt.Errorf("step-radix-2 domain of size %d: %w", m, err)
	}
	smallOmega, err := fld.RootOfUnity(smallM)
	if err != nil {
		return nil, fmt.Errorf("step-radix-2 domain of size %d: %w", m, err)
	}

	// Unused DomainOption knobs are still validated here so a future option
	// keeps the same construction surface across families.
	_ = newDomainConfig(opts)

	d := &StepRadix2Domain[E, PE]{
		fld:        fld,
		m:          m,
		bigM:       bigM,
		smallM:     smallM,
		compr:      bigM / smallM,
		omega:      omega,
		smallOmega: smallOmega,
	}
	PE(&d.omegaInv).Inverse(&d.omega)
	PE(&d.bigOmega).Square(&d.omega)
	PE(&d.bigOmegaInv).Inverse(&d.bigOmega)
	PE(&d.smallOmegaInv).Inverse(&d.smallOmega)
	PE(&d.omegaToSmallM).Exp(d.omega, new(big.Int).SetUint64(smallM))
	PE(&d.bigMInv).SetUint64(bigM)
	PE(&d.bigMInv).Inverse(&d.bigMInv)
	PE(&d.smallMInv).SetUint64(smallM)
	PE(&d.smallMInv).Inverse(&d.smallMInv)
	PE(&d.twoInv).SetUint64(2)
	PE(&d.twoInv).Inverse(&d.twoInv)

	d.scratch.New = func() any {
		return &stepScratch[E]{
			big0:  make([]E, bigM),
			big1:  make([]E, bigM),
			small: make([]E, smallM),
		}
	}
	return d, nil
}

// TryNewStepRadix2Domain is the non-failing form of NewStepRadix2Domain used
// by the family-selection ladder.
func TryNewStepRadix2Domain[E any, PE field.Element[E]](fld field.Field[E], m uint64, opts ...DomainOption) (*StepRadix2Domain[E, PE], bool) {
	d, err := NewStepRadix2Domain[E, PE](fld, m, opts...)
	if err != nil {
		return nil, false
	}
	return d, true
}

// Size returns the number of points in the domain.
func (d *StepRadix2Domain[E, PE]) Size() uint64 {
	return d.m
}

// FFT evaluates the coefficients in a at every domain point, in place.
//
// The coefficient vector is split against the two subgroups: c picks up the
// residues modulo x^bigM - 1 (evaluated on the bigM subgroup), while d's
// omega-twisted residues are folded into e and evaluated on the shifted
// smallM subgroup.
func (d *StepRadix2Domain[E, PE]) FFT(a []E) error {
	if err := checkLength(d.m, uint64(len(a))); err != nil {
		return err
	}

	s, err := pool.Get[*stepScratch[E]](&d.scratch)
	if err != nil {
		return err
	}
	defer pool.Put(&d.scratch, s)
	c, twisted, e := s.big0, s.big1, s.small

	var omegaI, diff E
	PE(&omegaI).SetOne()
	for i := uint64(0); i < d.bigM; i++ {
		if i < d.smallM {
			PE(&c[i]).Add(&a[i], &a[i+d.bigM])
			PE(&diff).Sub(&a[i], &a[i+d.bigM])
			PE(&twisted[i]).Mul(&omegaI, &diff)
		} else {
			c[i] = a[i]
			PE(&twisted[i]).Mul(&omegaI, &a[i])
		}
		PE(&omegaI).Mul(&omegaI, &d.omega)
	}

	for i := range e {
		PE(&e[i]).SetZero()
	}
	for i := uint64(0); i < d.smallM; i++ {
		for j := uint64(0); j < d.compr; j++ {
			PE(&e[i]).Add(&e[i], &twisted[i+j*d.smallM])
		}
	}

	if err := fft.Transform[E, PE](c, d.bigOmega); err != nil {
		return err
	}
	if err := fft.Transform[E, PE](e, d.smallOmega); err != nil {
		return err
	}

	copy(a[:d.bigM], c)
	copy(a[d.bigM:], e)
	return nil
}

// IFFT interpolates the values in a back to coefficients, in place. It is the
// exact algebraic inverse of the forward split: both halves are inverse
// transformed independently, the fold is undone by subtracting the replicated
// strided contributions, and the prefix/coset blocks are recombined via
// (U0 +/- U1)/2. Division by two is exact since the field characteristic is
// odd.
func (d *StepRadix2Domain[E, PE]) IFFT(a []E) error {
	if err := checkLength(d.m, uint64(len(a))); err != nil {
		return err
	}

	s, err := pool.Get[*stepScratch[E]](&d.scratch)
	if err != nil {
		return err
	}
	defer pool.Put(&d.scratch, s)
	u0, tmp, u1 := s.big0, s.big1, s.small

	copy(u0, a[:d.bigM])
	copy(u1, a[d.bigM:])

	if err := fft.Transform[E, PE](u0, d.bigOmegaInv); err != nil {
		return err
	}
	if err := fft.Transform[E, PE](u1, d.smallOmegaInv); err != nil {
		return err
	}
	for i := range u0 {
		PE(&u0[i]).Mul(&u0[i], &d.bigMInv)
	}
	for i := range u1 {
		PE(&u1[i]).Mul(&u1[i], &d.smallMInv)
	}

	var omegaI E
	PE(&omegaI).SetOne()
	for i := uint64(0); i < d.bigM; i++ {
		PE(&tmp[i]).Mul(&u0[i], &omegaI)
		PE(&omegaI).Mul(&omegaI, &d.omega)
	}

	// The suffix coefficients are not entangled with the coset block.
	for i := d.smallM; i < d.bigM; i++ {
		a[i] = u0[i]
	}

	for i := uint64(0); i < d.smallM; i++ {
		for j := uint64(1); j < d.compr; j++ {
			PE(&u1[i]).Sub(&u1[i], &tmp[i+j*d.smallM])
		}
	}

	var omegaInvI E
	PE(&omegaInvI).SetOne()
	for i := uint64(0); i < d.smallM; i++ {
		PE(&u1[i]).Mul(&u1[i], &omegaInvI)
		PE(&omegaInvI).Mul(&omegaInvI, &d.omegaInv)
	}

	var sum, diff E
	for i := uint64(0); i < d.smallM; i++ {
		PE(&sum).Add(&u0[i], &u1[i])
		PE(&a[i]).Mul(&sum, &d.twoInv)
		PE(&diff).Sub(&u0[i], &u1[i])
		PE(&a[d.bigM+i]).Mul(&diff, &d.twoInv)
	}
	return nil
}

// CosetFFT evaluates the coefficients in a over the coset g*domain, in place.
func (d *StepRadix2Domain[E, PE]) CosetFFT(a []E, g E) error {
	if err := checkLength(d.m, uint64(len(a))); err != nil {
		return err
	}
	multiplyByCoset[E, PE](a, g)
	return d.FFT(a)
}

// CosetIFFT interpolates values over the coset g*domain back to coefficients,
// in place.
func (d *StepRadix2Domain[E, PE]) CosetIFFT(a []E, g E) error {
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
// basis polynomials of the domain. The bases of the two sub-domains are
// evaluated with the shared closed form, then each is rescaled by the factor
// the other sub-domain's vanishing polynomial contributes at t.
func (d *StepRadix2Domain[E, PE]) EvaluateAllLagrangePolynomials(t E) ([]E, error) {
	innerBig, err := evaluateAllLagrangePolynomials[E, PE](d.fld, d.bigM, t)
	if err != nil {
		return nil, err
	}
	var tShifted E
	PE(&tShifted).Mul(&t, &d.omegaInv)
	innerSmall, err := evaluateAllLagrangePolynomials[E, PE](d.fld, d.smallM, tShifted)
	if err != nil {
		return nil, err
	}

	result := make([]E, d.m)
	var one E
	PE(&one).SetOne()

	// L0 = t^smallM - omega^smallM, the coset block's vanishing factor.
	var l0, tPowSmall E
	PE(&tPowSmall).Exp(t, new(big.Int).SetUint64(d.smallM))
	PE(&l0).Sub(&tPowSmall, &d.omegaToSmallM)

	var bigOmegaToSmallM E
	PE(&bigOmegaToSmallM).Exp(d.bigOmega, new(big.Int).SetUint64(d.smallM))

	// elt walks bigOmega^(i*smallM); the denominator is the coset factor
	// evaluated at domain point i.
	var elt, denom, num E
	PE(&elt).SetOne()
	for i := uint64(0); i < d.bigM; i++ {
		PE(&denom).Sub(&elt, &d.omegaToSmallM)
		PE(&denom).Inverse(&denom)
		PE(&num).Mul(&innerBig[i], &l0)
		PE(&result[i]).Mul(&num, &denom)
		PE(&elt).Mul(&elt, &bigOmegaToSmallM)
	}

	// L1 = (t^bigM - 1)/(omega^bigM - 1): the subgroup's vanishing factor at
	// t, normalized by its value on the coset.
	var l1, tPowBig, omegaPowBig E
	PE(&tPowBig).Exp(t, new(big.Int).SetUint64(d.bigM))
	PE(&l1).Sub(&tPowBig, &one)
	PE(&omegaPowBig).Exp(d.omega, new(big.Int).SetUint64(d.bigM))
	PE(&omegaPowBig).Sub(&omegaPowBig, &one)
	PE(&omegaPowBig).Inverse(&omegaPowBig)
	PE(&l1).Mul(&l1, &omegaPowBig)

	for i := uint64(0); i < d.smallM; i++ {
		PE(&result[d.bigM+i]).Mul(&l1, &innerSmall[i])
	}
	return result, nil
}

// Element returns the idx-th domain point: bigOmega^idx on the subgroup part,
// omega*smallOmega^(idx-bigM) on the coset part.
func (d *StepRadix2Domain[E, PE]) Element(idx uint64) (E, error) {
	var r E
	if idx >= d.m {
		return r, fmt.Errorf("%w: index %d, domain size %d", ErrIndexOutOfRange, idx, d.m)
	}
	if idx < d.bigM {
		PE(&r).Exp(d.bigOmega, new(big.Int).SetUint64(idx))
		return r, nil
	}
	PE(&r).Exp(d.smallOmega, new(big.Int).SetUint64(idx-d.bigM))
	PE(&r).Mul(&r, &d.omega)
	return r, nil
}

// EvaluateVanishingPolynomial returns
// (t^bigM - 1) * (t^smallM - omega^smallM), which vanishes exactly on the
// subgroup and on the shifted coset.
func (d *StepRadix2Domain[E, PE]) EvaluateVanishingPolynomial(t E) E {
	var sub, coset, one, r E
	PE(&one).SetOne()
	PE(&sub).Exp(t, new(big.Int).SetUint64(d.bigM))
	PE(&sub).Sub(&sub, &one)
	PE(&coset).Exp(t, new(big.Int).SetUint64(d.smallM))
	PE(&coset).Sub(&coset, &d.omegaToSmallM)
	PE(&r).Mul(&sub, &coset)
	return r
}

// AddVanishingPolynomial adds coeff times the expanded vanishing polynomial
//
//	x^m - omega^smallM * x^bigM - x^smallM + omega^smallM
//
// to the coefficient buffer h, which must have length m+1.
func (d *StepRadix2Domain[E, PE]) AddVanishingPolynomial(coeff E, h []E) error {
	if err := checkLength(d.m+1, uint64(len(h))); err != nil {
		return err
	}
	var shifted E
	PE(&shifted).Mul(&coeff, &d.omegaToSmallM)
	PE(&h[d.m]).Add(&h[d.m], &coeff)
	PE(&h[d.bigM]).Sub(&h[d.bigM], &shifted)
	PE(&h[d.smallM]).Sub(&h[d.smallM], &coeff)
	PE(&h[0]).Add(&h[0], &shifted)
	return nil
}

// DivideByVanishingPolynomialOnCoset divides values on the coset g*domain
// (g the field's multiplicative generator) by the vanishing polynomial.
//
// At coset point g*bigOmega^i the vanishing polynomial evaluates to
// Z0 * (g^smallM * omega^(2*smallM*i) - omega^smallM) with Z0 = g^bigM - 1,
// walked incrementally over i. On the coset's shifted block it is the single
// constant Z1 = ((g*omega)^bigM - 1) * ((g*omega)^smallM - omega^smallM).
func (d *StepRadix2Domain[E, PE]) DivideByVanishingPolynomialOnCoset(a []E) error {
	if err := checkLength(d.m, uint64(len(a))); err != nil {
		return err
	}
	g := d.fld.MultiplicativeGenerator()

	var z0, one E
	PE(&one).SetOne()
	PE(&z0).Exp(g, new(big.Int).SetUint64(d.bigM))
	PE(&z0).Sub(&z0, &one)

	var gToSmallMTimesZ0, omegaToSmallMTimesZ0 E
	PE(&gToSmallMTimesZ0).Exp(g, new(big.Int).SetUint64(d.smallM))
	PE(&gToSmallMTimesZ0).Mul(&gToSmallMTimesZ0, &z0)
	PE(&omegaToSmallMTimesZ0).Mul(&d.omegaToSmallM, &z0)

	var omegaToTwoSmallM E
	PE(&omegaToTwoSmallM).Exp(d.omega, new(big.Int).SetUint64(2*d.smallM))

	var elt, denom E
	PE(&elt).SetOne()
	for i := uint64(0); i < d.bigM; i++ {
		PE(&denom).Mul(&gToSmallMTimesZ0, &elt)
		PE(&denom).Sub(&denom, &omegaToSmallMTimesZ0)
		PE(&denom).Inverse(&denom)
		PE(&a[i]).Mul(&a[i], &denom)
		PE(&elt).Mul(&elt, &omegaToTwoSmallM)
	}

	var gOmega, z1, z1Coset E
	PE(&gOmega).Mul(&g, &d.omega)
	PE(&z1).Exp(gOmega, new(big.Int).SetUint64(d.bigM))
	PE(&z1).Sub(&z1, &one)
	PE(&z1Coset).Exp(gOmega, new(big.Int).SetUint64(d.smallM))
	PE(&z1Coset).Sub(&z1Coset, &d.omegaToSmallM)
	PE(&z1).Mul(&z1, &z1Coset)
	PE(&z1).Inverse(&z1)
	for i := uint64(0); i < d.smallM; i++ {
		PE(&a[d.bigM+i]).Mul(&a[d.bigM+i], &z1)
	}
	return nil
}
