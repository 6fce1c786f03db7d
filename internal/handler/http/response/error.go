package response

import (
	"errors"
	"net/http"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/feed"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Shift domain errors
	case errors.Is(err, shift.ErrDayNotFound):
		NotFound(w, "Day record not found")
	case errors.Is(err, shift.ErrEmptyDate):
		BadRequest(w, "Date is required", nil)

	// Feed errors: the process stays up, the caller gets told the
	// upstream document is the problem.
	case errors.Is(err, feed.ErrUnavailable):
		ServiceUnavailable(w, "Feed source unavailable")
	case errors.Is(err, feed.ErrMalformed):
		BadGateway(w, "Feed document malformed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
