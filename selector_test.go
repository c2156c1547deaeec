package libfqfft_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/huyuguang/libfqfft"
	"github.com/huyuguang/libfqfft/internal/smallfield"
)

func TestGetEvaluationDomainSize(t *testing.T) {
	// BLS12-381's scalar field has two-adicity 32, so every small request must
	// be served by one of the radix-2 families.
	for n := uint64(2); n <= 100; n++ {
		d, err := libfqfft.GetEvaluationDomain(bls, n)
		require.NoError(t, err, "n=%d", n)
		require.GreaterOrEqual(t, d.Size(), n, "n=%d", n)
	}
}

func TestGetEvaluationDomainFamilies(t *testing.T) {
	d, err := libfqfft.GetEvaluationDomain(f17, 16)
	require.NoError(t, err)
	require.IsType(t, &libfqfft.Radix2Domain[smallfield.Element, *smallfield.Element]{}, d)
	require.Equal(t, uint64(16), d.Size())

	d, err = libfqfft.GetEvaluationDomain(f17, 12)
	require.NoError(t, err)
	require.IsType(t, &libfqfft.StepRadix2Domain[smallfield.Element, *smallfield.Element]{}, d)
	require.Equal(t, uint64(12), d.Size())

	// 11 has no two-power structure itself; it rounds up to 12 = 8 + 4.
	d, err = libfqfft.GetEvaluationDomain(f17, 11)
	require.NoError(t, err)
	require.IsType(t, &libfqfft.StepRadix2Domain[smallfield.Element, *smallfield.Element]{}, d)
	require.Equal(t, uint64(12), d.Size())

	// 17 = 16 + 1 is a valid step split over a field with enough two-adicity.
	dBls, err := libfqfft.GetEvaluationDomain(bls, 17)
	require.NoError(t, err)
	require.IsType(t, &libfqfft.StepRadix2Domain[fr.Element, *fr.Element]{}, dBls)
	require.Equal(t, uint64(17), dBls.Size())
}

func TestGetEvaluationDomainInvalidSize(t *testing.T) {
	_, err := libfqfft.GetEvaluationDomain(bls, 0)
	require.ErrorIs(t, err, libfqfft.ErrInvalidSize)
	_, err = libfqfft.GetEvaluationDomain(bls, 1)
	require.ErrorIs(t, err, libfqfft.ErrInvalidSize)
}

func TestGetEvaluationDomainNoMatch(t *testing.T) {
	// 17 = 16 + 1 needs a primitive 32nd root of unity, beyond F17's
	// two-adicity, and so does every candidate above it.
	_, err := libfqfft.GetEvaluationDomain(f17, 17)
	require.ErrorIs(t, err, libfqfft.ErrNoMatchingDomain)
	require.Contains(t, err.Error(), "17")

	_, err = libfqfft.GetEvaluationDomain(f17, 20)
	require.ErrorIs(t, err, libfqfft.ErrNoMatchingDomain)
}

func TestGetEvaluationDomainExtendedHook(t *testing.T) {
	var calls []uint64
	ext := libfqfft.WithExtendedRadix2(func(minSize uint64) (libfqfft.EvaluationDomain[smallfield.Element], bool) {
		calls = append(calls, minSize)
		return nil, false
	})

	// Extended radix-2 sits between basic and step, so for 12 it must be
	// consulted once before the step family accepts.
	d, err := libfqfft.GetEvaluationDomain(f17, 12, ext)
	require.NoError(t, err)
	require.Equal(t, uint64(12), d.Size())
	require.Equal(t, []uint64{12}, calls)

	// For 11 the whole ladder runs at 11 first, then again at 12.
	calls = nil
	d, err = libfqfft.GetEvaluationDomain(f17, 11, ext)
	require.NoError(t, err)
	require.Equal(t, uint64(12), d.Size())
	require.Equal(t, []uint64{11, 12}, calls)

	// A hook that succeeds preempts the step family.
	stub, err := libfqfft.NewRadix2Domain(f17, 16)
	require.NoError(t, err)
	d, err = libfqfft.GetEvaluationDomain(f17, 12,
		libfqfft.WithExtendedRadix2(func(minSize uint64) (libfqfft.EvaluationDomain[smallfield.Element], bool) {
			return stub, true
		}))
	require.NoError(t, err)
	require.Same(t, libfqfft.EvaluationDomain[smallfield.Element](stub), d)
}

func TestGetEvaluationDomainSequenceHooks(t *testing.T) {
	stub, err := libfqfft.NewRadix2Domain(f17, 16)
	require.NoError(t, err)

	var geometricCalled, arithmeticCalled bool

	// Sequence families are last resorts: they only run once every radix-2
	// candidate has failed.
	d, err := libfqfft.GetEvaluationDomain(f17, 17,
		libfqfft.WithGeometricSequence(func(minSize uint64) (libfqfft.EvaluationDomain[smallfield.Element], bool) {
			geometricCalled = true
			require.Equal(t, uint64(17), minSize)
			return stub, true
		}),
		libfqfft.WithArithmeticSequence(func(minSize uint64) (libfqfft.EvaluationDomain[smallfield.Element], bool) {
			arithmeticCalled = true
			return stub, true
		}))
	require.NoError(t, err)
	require.True(t, geometricCalled)
	require.False(t, arithmeticCalled, "geometric success must preempt arithmetic")
	require.Same(t, libfqfft.EvaluationDomain[smallfield.Element](stub), d)

	// Arithmetic is the final fallback.
	geometricCalled = false
	d, err = libfqfft.GetEvaluationDomain(f17, 17,
		libfqfft.WithGeometricSequence(func(minSize uint64) (libfqfft.EvaluationDomain[smallfield.Element], bool) {
			geometricCalled = true
			return nil, false
		}),
		libfqfft.WithArithmeticSequence(func(minSize uint64) (libfqfft.EvaluationDomain[smallfield.Element], bool) {
			arithmeticCalled = true
			return stub, true
		}))
	require.NoError(t, err)
	require.True(t, geometricCalled)
	require.True(t, arithmeticCalled)
	require.Same(t, libfqfft.EvaluationDomain[smallfield.Element](stub), d)
}

func TestGetEvaluationDomainForwardsOptions(t *testing.T) {
	d, err := libfqfft.GetEvaluationDomain(bls, 64,
		libfqfft.WithDomainOptions[fr.Element](libfqfft.WithNumGoRoutines(4)))
	require.NoError(t, err)

	seq, err := libfqfft.GetEvaluationDomain(bls, 64)
	require.NoError(t, err)

	a := randomFrElements(t, 64)
	b := append([]fr.Element(nil), a...)
	require.NoError(t, d.FFT(a))
	require.NoError(t, seq.FFT(b))
	require.Equal(t, b, a)
}
