// Package bls12381 adapts the scalar field of BLS12-381 (as implemented by
// gnark-crypto) to the field.Field contract.
package bls12381

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/huyuguang/libfqfft/field"
	"github.com/huyuguang/libfqfft/internal/utils"
)

// maxOrderRoot is the two-adicity of the BLS12-381 scalar field: its
// multiplicative group has order r-1 = 2^32 * t with t odd.
const maxOrderRoot uint64 = 32

// baseRootOfUnity generates the largest 2-adic subgroup; it has order 2^32.
var baseRootOfUnity fr.Element

func init() {
	_, err := baseRootOfUnity.SetString("10238227357739495823651030575849232062558860180284477541189508159991286009131")
	if err != nil {
		panic("failed to initialize root of unity")
	}
}

// Field implements field.Field for fr.Element. The zero value is ready to use.
type Field struct{}

var _ field.Field[fr.Element] = Field{}

// RootOfUnity returns a primitive order-th root of unity, for order a power of
// two up to 2^32. It is computed by powering the order-2^32 base root by
// 2^32/order.
func (Field) RootOfUnity(order uint64) (fr.Element, error) {
	var root fr.Element
	if !utils.IsPowerOfTwo(order) {
		return root, field.ErrRootOfUnityUnavailable
	}
	logOrder := utils.Log2(order)
	if logOrder > maxOrderRoot {
		return root, field.ErrRootOfUnityUnavailable
	}
	expo := new(big.Int).SetUint64(1 << (maxOrderRoot - logOrder))
	root.Exp(baseRootOfUnity, expo)
	return root, nil
}

// MultiplicativeGenerator returns 7, the smallest generator of the
// multiplicative group of the scalar field.
func (Field) MultiplicativeGenerator() fr.Element {
	var g fr.Element
	g.SetUint64(7)
	return g
}

// TwoAdicity returns 32.
func (Field) TwoAdicity() uint64 {
	return maxOrderRoot
}
