// Package field defines the arithmetic capability set that the transform and
// domain code is written against.
//
// The Element constraint mirrors the pointer-receiver API of gnark-crypto's
// generated prime field elements, so any of those fields can be plugged in
// without an adapter shim around the element type itself. The Field interface
// carries the per-field constants (multiplicative generator, roots of unity)
// that are not derivable from a single element.
package field

import "math/big"

// Element is the constraint satisfied by a pointer to a prime field element.
//
// All arithmetic methods follow the gnark-crypto convention: the receiver is
// the destination, operands are passed by pointer and z.Op(x, y) sets z = x op y,
// returning z.
type Element[E any] interface {
	*E

	Add(x, y *E) *E
	Sub(x, y *E) *E
	Mul(x, y *E) *E
	Square(x *E) *E
	Neg(x *E) *E
	// Inverse sets the receiver to 1/x. Following the gnark-crypto convention,
	// the inverse of zero is zero.
	Inverse(x *E) *E
	// Exp sets the receiver to x^k for k >= 0.
	Exp(x E, k *big.Int) *E

	Set(x *E) *E
	SetOne() *E
	SetZero() *E
	SetUint64(v uint64) *E

	Equal(x *E) bool
	IsOne() bool
	IsZero() bool
}

// Field describes a prime field: the constants needed to build evaluation
// domains over its elements. Implementations must be stateless value types or
// otherwise safe for concurrent use.
type Field[E any] interface {
	// RootOfUnity returns a primitive order-th root of unity. The order must be
	// a power of two no larger than 2^TwoAdicity(); otherwise
	// ErrRootOfUnityUnavailable is returned.
	RootOfUnity(order uint64) (E, error)

	// MultiplicativeGenerator returns a generator of the field's multiplicative
	// group. It is used as the canonical coset shift.
	MultiplicativeGenerator() E

	// TwoAdicity returns the largest s such that 2^s divides the order of the
	// multiplicative group.
	TwoAdicity() uint64
}

// One returns the field's multiplicative identity as a value.
func One[E any, PE Element[E]]() E {
	var one E
	PE(&one).SetOne()
	return one
}
