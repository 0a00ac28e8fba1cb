package api

import (
	"net/http"
	"review-verify/errors"
)

const (
	msgMissingReviewText = "No reviewText provided"
	msgNoReviews         = "No reviews provided"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a service error to its HTTP status and body.
// Input errors carry fixed messages; anything else is internal.
func statusFor(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, errors.ErrMissingReviewText):
		return http.StatusBadRequest, ErrorResponse{Error: msgMissingReviewText}
	case errors.Is(err, errors.ErrNoReviews):
		return http.StatusBadRequest, ErrorResponse{Error: msgNoReviews}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: err.Error()}
	}
}
