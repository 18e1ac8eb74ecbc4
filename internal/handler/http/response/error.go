package response

import (
	"errors"
	"net/http"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/auth"
	"github.com/das-hq/duty-backend-go/internal/domain/change"
	"github.com/das-hq/duty-backend-go/internal/domain/contact"
	"github.com/das-hq/duty-backend-go/internal/domain/dutylog"
	"github.com/das-hq/duty-backend-go/internal/domain/employee"
	"github.com/das-hq/duty-backend-go/internal/domain/payment"
	"github.com/das-hq/duty-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNoExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrEmployeeReferenced):
		Conflict(w, "Employee is referenced by duty assignments")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Duty assignment not found")
	case errors.Is(err, assignment.ErrAssignmentSlotTaken):
		Conflict(w, "An assignment already exists for this date and shift")
	case errors.Is(err, assignment.ErrWeekdayDayShift):
		BadRequest(w, "Weekday assignments only admit the night shift", nil)
	case errors.Is(err, assignment.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Change domain errors
	case errors.Is(err, change.ErrChangeNotFound):
		NotFound(w, "Duty change not found")
	case errors.Is(err, change.ErrSameEmployee):
		BadRequest(w, "Replacement must differ from the current occupant", nil)

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Duty payment not found")
	case errors.Is(err, payment.ErrInvalidMonth):
		BadRequest(w, "Invalid payment month", nil)

	// Duty log domain errors
	case errors.Is(err, dutylog.ErrLogNotFound):
		NotFound(w, "Duty log not found")
	case errors.Is(err, dutylog.ErrLogApproved):
		Conflict(w, "Approved logs are immutable")
	case errors.Is(err, dutylog.ErrNotDraft):
		Conflict(w, "Only a draft log can be submitted for approval")
	case errors.Is(err, dutylog.ErrNotRequested):
		Conflict(w, "Log is not awaiting approval")
	case errors.Is(err, dutylog.ErrRejectNeedsReason):
		BadRequest(w, "A rejection reason is required", nil)

	// Contact domain errors
	case errors.Is(err, contact.ErrContactNotFound):
		NotFound(w, "Emergency contact not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
