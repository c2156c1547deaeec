package libfqfft_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/huyuguang/libfqfft"
	"github.com/huyuguang/libfqfft/field"
	"github.com/huyuguang/libfqfft/internal/smallfield"
)

// checkLagrangeBasis verifies the two defining properties of the Lagrange
// basis values at t: weighted sums reproduce the monomials t^j, and at a
// domain point the values collapse to a unit vector.
func checkLagrangeBasis[E any, PE field.Element[E]](t *testing.T, d libfqfft.EvaluationDomain[E], point E) {
	t.Helper()
	m := d.Size()

	basis, err := d.EvaluateAllLagrangePolynomials(point)
	require.NoError(t, err)
	require.Len(t, basis, int(m))

	for j := uint64(0); j < m; j++ {
		var sum, term E
		PE(&sum).SetZero()
		for i := uint64(0); i < m; i++ {
			x, err := d.Element(i)
			require.NoError(t, err)
			p := domainPower[E, PE](x, j)
			PE(&term).Mul(&basis[i], &p)
			PE(&sum).Add(&sum, &term)
		}
		want := domainPower[E, PE](point, j)
		require.True(t, PE(&sum).Equal(&want), "sum_i L_i(t) * x_i^%d != t^%d", j, j)
	}
}

func TestLagrangeMod17(t *testing.T) {
	d, err := libfqfft.NewRadix2Domain(f17, 4)
	require.NoError(t, err)

	// t=6 is not a 4th root of unity mod 17.
	var point smallfield.Element
	point.SetUint64(6)
	basis, err := d.EvaluateAllLagrangePolynomials(point)
	require.NoError(t, err)
	require.Equal(t, f17Elements(1, 15, 9, 10), basis)

	checkLagrangeBasis[smallfield.Element](t, d, point)
}

func TestLagrangeUnitVectorAtDomainPoints(t *testing.T) {
	d, err := libfqfft.NewRadix2Domain(f17, 8)
	require.NoError(t, err)

	for k := uint64(0); k < d.Size(); k++ {
		x, err := d.Element(k)
		require.NoError(t, err)
		basis, err := d.EvaluateAllLagrangePolynomials(x)
		require.NoError(t, err)

		for i := uint64(0); i < d.Size(); i++ {
			if i == k {
				require.True(t, basis[i].IsOne(), "basis[%d] at point %d", i, k)
			} else {
				require.True(t, basis[i].IsZero(), "basis[%d] at point %d", i, k)
			}
		}
	}
}

func TestLagrangeBLS(t *testing.T) {
	d, err := libfqfft.NewRadix2Domain(bls, 16)
	require.NoError(t, err)

	var point fr.Element
	_, err = point.SetRandom()
	require.NoError(t, err)
	checkLagrangeBasis[fr.Element](t, d, point)
}

// Interpolating from Lagrange values must agree with the IFFT: the polynomial
// whose evaluations are a unit vector has coefficients m^-1 * (1, w^-i, ...).
func TestLagrangeConsistentWithIFFT(t *testing.T) {
	d, err := libfqfft.NewRadix2Domain(f17, 8)
	require.NoError(t, err)

	var point smallfield.Element
	point.SetUint64(5) // 5^8 = 16 mod 17, off the domain
	basis, err := d.EvaluateAllLagrangePolynomials(point)
	require.NoError(t, err)

	// For any value vector v, sum_i v_i * L_i(point) == p(point) where p is
	// the interpolation of v. Check with v = evaluations of a known poly.
	coeffs := f17Elements(3, 14, 0, 8, 2, 2, 11, 6)
	values := append([]smallfield.Element(nil), coeffs...)
	require.NoError(t, d.FFT(values))

	var got, term smallfield.Element
	for i := range values {
		term.Mul(&values[i], &basis[i])
		got.Add(&got, &term)
	}
	require.Equal(t, evaluatePoly[smallfield.Element](coeffs, point), got)
}
