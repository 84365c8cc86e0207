package luma

import "errors"

// Errors returned by the reducer. Failures wrap one of these with the details
// of the offending value, so callers should classify them with errors.Is.
var (
	// ErrInvalidFormat is returned when a buffer's shape or encoding does not
	// match what the operation requires.
	ErrInvalidFormat = errors.New("luma: invalid format")

	// ErrInvalidCoefficients is returned for a malformed weighting configuration.
	ErrInvalidCoefficients = errors.New("luma: invalid coefficients")

	// ErrAllocationFailure is returned when the destination memory could not be obtained.
	ErrAllocationFailure = errors.New("luma: allocation failure")
)
