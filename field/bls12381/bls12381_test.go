package bls12381

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/huyuguang/libfqfft/field"
)

func TestRootOfUnityOrders(t *testing.T) {
	var f Field
	for _, order := range []uint64{1, 2, 4, 1 << 10, 1 << 20} {
		root, err := f.RootOfUnity(order)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		var r fr.Element
		r.Exp(root, new(big.Int).SetUint64(order))
		if !r.IsOne() {
			t.Errorf("root of order %d: root^order != 1", order)
		}
		if order > 1 {
			r.Exp(root, new(big.Int).SetUint64(order/2))
			if r.IsOne() {
				t.Errorf("root of order %d is not primitive", order)
			}
		}
	}
}

func TestRootOfUnityUnavailable(t *testing.T) {
	var f Field
	for _, order := range []uint64{0, 3, 12, 1 << 33, 1 << 40} {
		if _, err := f.RootOfUnity(order); !errors.Is(err, field.ErrRootOfUnityUnavailable) {
			t.Errorf("order %d: want ErrRootOfUnityUnavailable, got %v", order, err)
		}
	}
}

func TestMultiplicativeGenerator(t *testing.T) {
	var f Field
	g := f.MultiplicativeGenerator()

	var seven fr.Element
	seven.SetUint64(7)
	if !g.Equal(&seven) {
		t.Errorf("generator should be 7")
	}

	// The generator must sit outside every 2-adic subgroup: g^(2^adicity * t)
	// with t the odd cofactor is 1, but g^((r-1)/2) must not be.
	var rMinus1 big.Int
	rMinus1.Sub(fr.Modulus(), big.NewInt(1))
	var half big.Int
	half.Rsh(&rMinus1, 1)
	var r fr.Element
	r.Exp(g, &half)
	if r.IsOne() {
		t.Error("generator is a quadratic residue, so it cannot generate the full group")
	}
}
