// Package pool provides type-safe generic wrappers around sync.Pool.
//
// Transforms over composite domains need several same-sized scratch slices per
// call; recycling them through a pool keeps concurrent transform invocations
// from hammering the allocator. The wrappers remove the repetitive type
// assertions that raw sync.Pool use would need.
package pool

import (
	"fmt"
	"sync"
)

// Get retrieves a value from the pool with type safety.
// Returns an error if:
//   - the pool is nil
//   - the pool returns nil
//   - the pool returns a value of the wrong type
func Get[T any](p *sync.Pool) (T, error) {
	var zero T

	if p == nil {
		return zero, ErrPoolIsNil
	}

	v := p.Get()
	if v == nil {
		return zero, ErrPoolReturnedNil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: expected %T, got %T", ErrPoolWrongType, zero, v)
	}

	return typed, nil
}

// Put returns a value to the pool.
// Silently ignores a nil pool so it is safe in defer statements.
func Put[T any](p *sync.Pool, v T) {
	if p == nil {
		return
	}
	p.Put(v)
}
