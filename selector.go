package libfqfft

import (
	"fmt"

	"github.com/huyuguang/libfqfft/field"
	"github.com/huyuguang/libfqfft/internal/utils"
	"github.com/huyuguang/libfqfft/logger"
)

// Family is a try-constructor for an evaluation domain family: it either
// builds a domain of size at least minSize or reports that it cannot.
//
// It is how externally implemented families (extended-radix-2, geometric and
// arithmetic sequence domains) plug into the selection ladder.
type Family[E any] func(minSize uint64) (EvaluationDomain[E], bool)

// selectorConfig holds the optional family hooks, keyed by their fixed slot in
// the selection order.
type selectorConfig[E any] struct {
	extendedRadix2 Family[E]
	geometric      Family[E]
	arithmetic     Family[E]
	domainOpts     []DomainOption
}

// SelectorOption configures GetEvaluationDomain.
type SelectorOption[E any] func(*selectorConfig[E])

// WithExtendedRadix2 registers an extended-radix-2 family, tried after the
// basic radix-2 family at each candidate size.
func WithExtendedRadix2[E any](f Family[E]) SelectorOption[E] {
	return func(cfg *selectorConfig[E]) {
		cfg.extendedRadix2 = f
	}
}

// WithGeometricSequence registers a geometric-sequence family, tried when no
// root-of-unity family matches.
func WithGeometricSequence[E any](f Family[E]) SelectorOption[E] {
	return func(cfg *selectorConfig[E]) {
		cfg.geometric = f
	}
}

// WithArithmeticSequence registers an arithmetic-sequence family, tried last.
func WithArithmeticSequence[E any](f Family[E]) SelectorOption[E] {
	return func(cfg *selectorConfig[E]) {
		cfg.arithmetic = f
	}
}

// WithDomainOptions forwards construction options to the in-repo families.
func WithDomainOptions[E any](opts ...DomainOption) SelectorOption[E] {
	return func(cfg *selectorConfig[E]) {
		cfg.domainOpts = opts
	}
}

// GetEvaluationDomain returns an evaluation domain over fld of size at least
// minSize, trying families in a fixed priority order: basic radix-2, extended
// radix-2 (if registered), step radix-2 — first at minSize itself, then at
// minSize rounded up to the nearest valid two-power split — and finally the
// registered geometric and arithmetic sequence families, which have no
// root-of-unity requirement.
//
// The first family that constructs wins. If every attempt fails, the error
// wraps ErrNoMatchingDomain and names the originally requested size.
func GetEvaluationDomain[E any, PE field.Element[E]](fld field.Field[E], minSize uint64, opts ...SelectorOption[E]) (EvaluationDomain[E], error) {
	if minSize <= 1 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidSize, minSize)
	}

	var cfg selectorConfig[E]
	for _, opt := range opts {
		opt(&cfg)
	}

	basic := func(size uint64) (EvaluationDomain[E], bool) {
		d, ok := TryNewRadix2Domain[E, PE](fld, size, cfg.domainOpts...)
		if !ok {
			return nil, false
		}
		return d, true
	}
	step := func(size uint64) (EvaluationDomain[E], bool) {
		d, ok := TryNewStepRadix2Domain[E, PE](fld, size, cfg.domainOpts...)
		if !ok {
			return nil, false
		}
		return d, true
	}

	rounded := roundUpToTwoPowerSplit(minSize)
	attempts := []struct {
		family string
		size   uint64
		try    Family[E]
	}{
		{"basic_radix2", minSize, basic},
		{"extended_radix2", minSize, cfg.extendedRadix2},
		{"step_radix2", minSize, step},
		{"basic_radix2", rounded, basic},
		{"extended_radix2", rounded, cfg.extendedRadix2},
		{"step_radix2", rounded, step},
		{"geometric_sequence", minSize, cfg.geometric},
		{"arithmetic_sequence", minSize, cfg.arithmetic},
	}

	log := logger.Logger()
	for _, attempt := range attempts {
		if attempt.try == nil {
			continue
		}
		if d, ok := attempt.try(attempt.size); ok {
			log.Debug().
				Str("family", attempt.family).
				Uint64("requested", minSize).
				Uint64("size", d.Size()).
				Msg("selected evaluation domain")
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: size %d", ErrNoMatchingDomain, minSize)
}

// roundUpToTwoPowerSplit splits minSize as big + small with
// big = 2^(ceil(log2 minSize)-1), then rounds small up to a power of two.
// The result is a candidate size the radix-2 families may accept when minSize
// itself has no valid two-power structure.
func roundUpToTwoPowerSplit(minSize uint64) uint64 {
	big := uint64(1) << (utils.Log2(minSize) - 1)
	small := minSize - big
	return big + uint64(1)<<utils.Log2(small)
}
