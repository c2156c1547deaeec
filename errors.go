package libfqfft

import "errors"

var (
	// ErrInvalidSize is returned when a domain is constructed with a size that
	// is too small or does not satisfy the family's structural requirements.
	ErrInvalidSize = errors.New("evaluation domain size is invalid")

	// ErrBufferSizeMismatch is returned when a caller-supplied buffer does not
	// have the exact length an operation requires.
	ErrBufferSizeMismatch = errors.New("buffer length does not match the required size")

	// ErrIndexOutOfRange is returned when a domain element index is not below
	// the domain size.
	ErrIndexOutOfRange = errors.New("domain element index is out of range")

	// ErrNoMatchingDomain is returned by GetEvaluationDomain when every domain
	// family fails to construct for the requested size.
	ErrNoMatchingDomain = errors.New("no evaluation domain family matches the requested size")
)
