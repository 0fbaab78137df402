package querykit

import "go.llib.dev/querykit/pkg/errorkit"

const (
	// ErrEmptySequence is returned when an element is requested from a sequence with no elements.
	ErrEmptySequence errorkit.Error = "querykit: sequence contains no elements"
	// ErrMoreThanOneElement is returned when a single element is expected but the sequence has more.
	ErrMoreThanOneElement errorkit.Error = "querykit: sequence contains more than one element"
)
