package field

import "errors"

var (
	// ErrRootOfUnityUnavailable is returned when a field cannot supply a
	// primitive root of unity of the requested order, either because the order
	// is not a power of two or because it exceeds the field's two-adicity.
	ErrRootOfUnityUnavailable = errors.New("field does not have a primitive root of unity of the requested order")
)
