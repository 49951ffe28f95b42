package match

import "errors"

var (
	// ErrUnknownAlgorithm indicates an Algorithm value or name with no matcher.
	ErrUnknownAlgorithm = errors.New("match: unknown algorithm")

	// ErrInvalidRuns indicates a non-positive repetition count for Compare.
	ErrInvalidRuns = errors.New("match: runs must be positive")

	// ErrDisagreement indicates two algorithms reported different matches.
	ErrDisagreement = errors.New("match: algorithms disagree")
)
