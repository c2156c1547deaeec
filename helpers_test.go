package libfqfft_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/huyuguang/libfqfft"
	"github.com/huyuguang/libfqfft/field"
	"github.com/huyuguang/libfqfft/field/bls12381"
	"github.com/huyuguang/libfqfft/internal/smallfield"
)

// Both in-repo families must satisfy the domain capability set.
var (
	_ libfqfft.EvaluationDomain[smallfield.Element] = (*libfqfft.Radix2Domain[smallfield.Element, *smallfield.Element])(nil)
	_ libfqfft.EvaluationDomain[smallfield.Element] = (*libfqfft.StepRadix2Domain[smallfield.Element, *smallfield.Element])(nil)
)

var (
	f17 field.Field[smallfield.Element] = smallfield.F17{}
	bls field.Field[fr.Element]         = bls12381.Field{}
)

func f17Elements(values ...uint64) []smallfield.Element {
	out := make([]smallfield.Element, len(values))
	for i, v := range values {
		out[i].SetUint64(v)
	}
	return out
}

func randomFrElements(t *testing.T, n int) []fr.Element {
	t.Helper()
	out := make([]fr.Element, n)
	for i := range out {
		_, err := out[i].SetRandom()
		require.NoError(t, err)
	}
	return out
}

// evaluatePoly computes sum_j coeffs[j] * x^j by Horner's rule.
func evaluatePoly[E any, PE field.Element[E]](coeffs []E, x E) E {
	var acc E
	PE(&acc).SetZero()
	for j := len(coeffs) - 1; j >= 0; j-- {
		PE(&acc).Mul(&acc, &x)
		PE(&acc).Add(&acc, &coeffs[j])
	}
	return acc
}

// evaluateOnDomain computes the expected forward transform by evaluating the
// polynomial directly at every domain point.
func evaluateOnDomain[E any, PE field.Element[E]](t *testing.T, d libfqfft.EvaluationDomain[E], coeffs []E) []E {
	t.Helper()
	out := make([]E, d.Size())
	for i := uint64(0); i < d.Size(); i++ {
		x, err := d.Element(i)
		require.NoError(t, err)
		out[i] = evaluatePoly[E, PE](coeffs, x)
	}
	return out
}

// domainPower returns element^j for a domain point.
func domainPower[E any, PE field.Element[E]](x E, j uint64) E {
	var r E
	PE(&r).Exp(x, new(big.Int).SetUint64(j))
	return r
}
