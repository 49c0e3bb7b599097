package srs

import "errors"

// Sentinel errors for the srs package.
// Use errors.Is to check: errors.Is(err, srs.ErrQualityOutOfRange)
var (
	ErrQualityOutOfRange = errors.New("srs: quality rating must be between 0 and 5")
	ErrMasteryOutOfRange = errors.New("srs: mastery score out of range")
	ErrInvalidParams     = errors.New("srs: parameters out of bounds")
)
