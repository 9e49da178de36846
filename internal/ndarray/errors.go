package ndarray

import "errors"

// Error kinds reported by the engine. Call sites wrap these with a message
// via github.com/pkg/errors, so callers can match the kind with errors.Is
// and still see where the contract was violated.
var (
	// ErrType marks a wrong argument category (axis neither nil nor int,
	// input neither array nor supported slice).
	ErrType = errors.New("type error")

	// ErrValue marks an argument outside its valid domain (axis out of
	// range, empty input to min/max, diff order out of range).
	ErrValue = errors.New("value error")

	// ErrAllocation marks a dense buffer the host allocator cannot provide.
	ErrAllocation = errors.New("allocation error")

	// ErrNotImplemented marks a kernel-dispatch combination outside the
	// validated input domain. Should be unreachable.
	ErrNotImplemented = errors.New("not implemented")
)
