package response

import (
	"errors"
	"net/http"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/attendance"
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/auth"
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/schedule"
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/user"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/validator"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance gate rejections keep the detailed message: the front end
	// renders it directly (next allowed time, active absence type).
	case errors.Is(err, attendance.ErrDuplicateEvent):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrWindowViolation):
		UnprocessableEntity(w, "WINDOW_VIOLATION", err.Error())
	case errors.Is(err, attendance.ErrAbsenceActive):
		UnprocessableEntity(w, "ABSENCE_ACTIVE", err.Error())
	case errors.Is(err, attendance.ErrDayBlocked):
		UnprocessableEntity(w, "DAY_BLOCKED", err.Error())
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrCycleNotComplete):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrInvalidMonthKey):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrWeeklyScheduleNotFound):
		NotFound(w, "Weekly schedule not found")
	case errors.Is(err, schedule.ErrRosterNotFound):
		NotFound(w, "Shift roster not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
