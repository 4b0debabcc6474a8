package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/attendance"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/auth"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/cuti"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/report"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/task"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/export"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
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
	// Preconditions carry their own user-facing message
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAttendanceNotOpen),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut),
		errors.Is(err, user.ErrWrongOldPassword),
		errors.Is(err, user.ErrCannotDeleteSelf),
		errors.Is(err, report.ErrAttachmentTooLarge),
		errors.Is(err, export.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrGoogleEmailNotVerified),
		errors.Is(err, auth.ErrGoogleAccountNotLinked):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrGoogleSignInDisabled):
		NotFound(w, "Google sign-in is not available")

	// Access control
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrForbidden),
		errors.Is(err, task.ErrForbidden):
		Forbidden(w, "Forbidden")

	// Not found
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrAssigneeNotFound):
		NotFound(w, "Assignee not found")
	case errors.Is(err, cuti.ErrCutiNotFound):
		NotFound(w, "Cuti not found")
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")

	// Duplicates
	case errors.Is(err, user.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
