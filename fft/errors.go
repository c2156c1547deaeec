package fft

import "errors"

var (
	// ErrNotPowerOfTwo is returned when the buffer handed to a transform does
	// not have a power-of-two length.
	ErrNotPowerOfTwo = errors.New("transform requires a buffer whose length is a power of two")
)
