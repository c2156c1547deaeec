// Package goldilocks adapts the 64-bit Goldilocks field p = 2^64 - 2^32 + 1
// (as implemented by gnark-crypto) to the field.Field contract.
package goldilocks

import (
	"math/big"

	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/huyuguang/libfqfft/field"
	"github.com/huyuguang/libfqfft/internal/utils"
)

// maxOrderRoot is the two-adicity of Goldilocks: p-1 = 2^32 * (2^32 - 1).
const maxOrderRoot uint64 = 32

// baseRootOfUnity generates the largest 2-adic subgroup; it has order 2^32.
var baseRootOfUnity goldilocks.Element

func init() {
	var seven goldilocks.Element
	seven.SetUint64(7)
	// 7 generates the whole multiplicative group, so 7^((p-1)/2^32) has order
	// exactly 2^32. (p-1)/2^32 = 2^32 - 1.
	baseRootOfUnity.Exp(seven, new(big.Int).SetUint64(1<<32-1))
}

// Field implements field.Field for goldilocks.Element. The zero value is ready
// to use.
type Field struct{}

var _ field.Field[goldilocks.Element] = Field{}

// RootOfUnity returns a primitive order-th root of unity, for order a power of
// two up to 2^32.
func (Field) RootOfUnity(order uint64) (goldilocks.Element, error) {
	var root goldilocks.Element
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
// multiplicative group.
func (Field) MultiplicativeGenerator() goldilocks.Element {
	var g goldilocks.Element
	g.SetUint64(7)
	return g
}

// TwoAdicity returns 32.
func (Field) TwoAdicity() uint64 {
	return maxOrderRoot
}
