// Package smallfield implements the field of integers modulo 17.
//
// With only 17 elements and two-adicity 4 (16 divides 17-1), every transform
// over it can be checked against pen-and-paper arithmetic, which makes it the
// field of choice for exact test vectors. The element type satisfies the same
// pointer-method contract as gnark-crypto's generated fields, so all generic
// code paths exercised here are the ones production fields run through.
package smallfield

import (
	"math/big"

	"github.com/huyuguang/libfqfft/field"
	"github.com/huyuguang/libfqfft/internal/utils"
)

// Modulus is the prime defining the field.
const Modulus uint64 = 17

// generator is the smallest primitive root modulo 17. It has order 16.
const generator uint64 = 3

// maxOrderRoot is the two-adicity of the field: 17 - 1 = 2^4.
const maxOrderRoot uint64 = 4

// Element is an integer modulo 17, always kept in the range [0, 16].
type Element uint64

// Add sets z = x + y and returns z.
func (z *Element) Add(x, y *Element) *Element {
	*z = Element((uint64(*x) + uint64(*y)) % Modulus)
	return z
}

// Sub sets z = x - y and returns z.
func (z *Element) Sub(x, y *Element) *Element {
	*z = Element((uint64(*x) + Modulus - uint64(*y)) % Modulus)
	return z
}

// Mul sets z = x * y and returns z.
func (z *Element) Mul(x, y *Element) *Element {
	*z = Element(uint64(*x) * uint64(*y) % Modulus)
	return z
}

// Square sets z = x * x and returns z.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Neg sets z = -x and returns z.
func (z *Element) Neg(x *Element) *Element {
	*z = Element((Modulus - uint64(*x)) % Modulus)
	return z
}

// Inverse sets z = 1/x by Fermat's little theorem: x^15 == x^-1 mod 17.
// The inverse of zero is zero.
func (z *Element) Inverse(x *Element) *Element {
	return z.Exp(*x, big.NewInt(int64(Modulus-2)))
}

// Exp sets z = x^k for k >= 0 and returns z.
func (z *Element) Exp(x Element, k *big.Int) *Element {
	res := new(big.Int).Exp(new(big.Int).SetUint64(uint64(x)), k, new(big.Int).SetUint64(Modulus))
	*z = Element(res.Uint64())
	return z
}

// Set sets z to x and returns z.
func (z *Element) Set(x *Element) *Element {
	*z = *x
	return z
}

// SetOne sets z to 1 and returns z.
func (z *Element) SetOne() *Element {
	*z = 1
	return z
}

// SetZero sets z to 0 and returns z.
func (z *Element) SetZero() *Element {
	*z = 0
	return z
}

// SetUint64 sets z to v mod 17 and returns z.
func (z *Element) SetUint64(v uint64) *Element {
	*z = Element(v % Modulus)
	return z
}

// Equal returns true if z == x.
func (z *Element) Equal(x *Element) bool {
	return *z == *x
}

// IsOne returns true if z == 1.
func (z *Element) IsOne() bool {
	return *z == 1
}

// IsZero returns true if z == 0.
func (z *Element) IsZero() bool {
	return *z == 0
}

// F17 implements field.Field for Element. The zero value is ready to use.
type F17 struct{}

var _ field.Field[Element] = F17{}

// RootOfUnity returns a primitive order-th root of unity, for order a power of
// two up to 2^4 = 16. The base root is the generator 3 itself, since the whole
// multiplicative group has order 16.
func (F17) RootOfUnity(order uint64) (Element, error) {
	if !utils.IsPowerOfTwo(order) {
		return 0, field.ErrRootOfUnityUnavailable
	}
	logOrder := utils.Log2(order)
	if logOrder > maxOrderRoot {
		return 0, field.ErrRootOfUnityUnavailable
	}
	var root Element
	root.Exp(Element(generator), new(big.Int).SetUint64(1<<(maxOrderRoot-logOrder)))
	return root, nil
}

// MultiplicativeGenerator returns 3.
func (F17) MultiplicativeGenerator() Element {
	return Element(generator)
}

// TwoAdicity returns 4.
func (F17) TwoAdicity() uint64 {
	return maxOrderRoot
}
