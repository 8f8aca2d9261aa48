package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pim-intern/attendance-backend/internal/domain/attendance"
	"github.com/pim-intern/attendance-backend/internal/domain/auth"
	"github.com/pim-intern/attendance-backend/internal/domain/user"
	"github.com/pim-intern/attendance-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance rejections carry a structured payload
	var windowErr *attendance.TimeWindowError
	var dupErr *attendance.DuplicateError
	var rangeErr *attendance.OutOfRangeError
	var stateErr *attendance.StateError

	switch {
	case errors.As(err, &windowErr):
		Rejected(w, "TIME_WINDOW", windowErr.Error(), windowErr.Details())
		return
	case errors.As(err, &dupErr):
		var details interface{}
		if d := dupErr.Details(); d != nil {
			details = d
		}
		Rejected(w, "DUPLICATE", dupErr.Error(), details)
		return
	case errors.As(err, &rangeErr):
		Rejected(w, "OUT_OF_RANGE", rangeErr.Error(), rangeErr.Details())
		return
	case errors.As(err, &stateErr):
		Rejected(w, "INVALID_STATE", stateErr.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserExists):
		Conflict(w, "Badge or email already registered")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrActingForOtherUser):
		Forbidden(w, err.Error())

	// Attendance sentinels without a structured payload
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
