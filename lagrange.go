package libfqfft

import (
	"errors"
	"math/big"

	"github.com/huyuguang/libfqfft/field"
)

// evaluateAllLagrangePolynomials returns the values at t of all m Lagrange
// basis polynomials of the size-m roots-of-unity domain. m must be a power of
// two (m == 1 is the trivial domain {1}).
//
// Off the domain this is the closed form
//
//	L_i(t) = (t^m - 1)/m * omega^i / (t - omega^i)
//
// evaluated with two running power series instead of per-index exponentiation.
// On the domain, exactly one basis polynomial is one and the rest vanish.
func evaluateAllLagrangePolynomials[E any, PE field.Element[E]](fld field.Field[E], m uint64, t E) ([]E, error) {
	if m == 1 {
		return []E{field.One[E, PE]()}, nil
	}
	omega, err := fld.RootOfUnity(m)
	if err != nil {
		return nil, err
	}

	u := make([]E, m)
	var one E
	PE(&one).SetOne()

	var tPowM E
	PE(&tPowM).Exp(t, new(big.Int).SetUint64(m))

	if PE(&tPowM).IsOne() {
		// t is an m-th root of unity, hence a domain point; scan for it.
		var omegaI E
		PE(&omegaI).SetOne()
		for i := uint64(0); i < m; i++ {
			if PE(&omegaI).Equal(&t) {
				PE(&u[i]).SetOne()
				return u, nil
			}
			PE(&omegaI).Mul(&omegaI, &omega)
		}
		// omega generates every m-th root of unity, so the scan cannot miss
		// unless the field adapter returned a non-primitive root.
		return nil, errors.New("point is an m-th root of unity but matches no domain element")
	}

	// l runs over (t^m - 1)/m * omega^i, r over omega^i.
	var l, r, denom E
	PE(&l).Sub(&tPowM, &one)
	PE(&denom).SetUint64(m)
	PE(&denom).Inverse(&denom)
	PE(&l).Mul(&l, &denom)
	PE(&r).SetOne()
	for i := uint64(0); i < m; i++ {
		PE(&denom).Sub(&t, &r)
		PE(&denom).Inverse(&denom)
		PE(&u[i]).Mul(&l, &denom)
		PE(&l).Mul(&l, &omega)
		PE(&r).Mul(&r, &omega)
	}
	return u, nil
}
