package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMissingReviewText = fmt.Errorf("review text is missing or blank")
	ErrNoReviews         = fmt.Errorf("no reviews have been provided")
	ErrModelUnavailable  = fmt.Errorf("no model bundle is loaded")
	ErrDimensionMismatch = fmt.Errorf("feature vector dimension mismatch")
	ErrUnknownLabel      = fmt.Errorf("unknown label index")
	ErrMissingVectorizer = fmt.Errorf("model bundle has no vectorizer")
	ErrMissingClassifier = fmt.Errorf("model bundle has no classifier")
	ErrCorruptBundle     = fmt.Errorf("model bundle is corrupt")
	ErrInvalidPolicy     = fmt.Errorf("invalid heuristic policy")
	ErrUnknownScorer     = fmt.Errorf("unknown scorer")
)

// Is forwards to the standard library so callers only import this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsInput reports whether err was caused by the caller's payload rather than the service.
func IsInput(err error) bool {
	return errors.Is(err, ErrMissingReviewText) || errors.Is(err, ErrNoReviews)
}
