package change

import (
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
)

type Reason string

const (
	ReasonBusinessTrip Reason = "business_trip"
	ReasonSecondment   Reason = "secondment"
	ReasonTraining     Reason = "training"
	ReasonFamilyEvent  Reason = "family_event"
	ReasonSickLeave    Reason = "sick_leave"
	ReasonOther        Reason = "other"
)

func ValidReason(s string) bool {
	switch Reason(s) {
	case ReasonBusinessTrip, ReasonSecondment, ReasonTraining,
		ReasonFamilyEvent, ReasonSickLeave, ReasonOther:
		return true
	}
	return false
}

// Change is an append-only audit record of a roster substitution. It is
// never mutated after creation.
type Change struct {
	ID                 string
	AssignmentID       string
	Role               assignment.DutyRole
	OriginalEmployeeID string
	NewEmployeeID      string
	Reason             Reason
	ChangeDate         time.Time
	CreatedAt          time.Time

	// Resolved identity for display.
	OriginalEmployeeNo   *string
	OriginalEmployeeName *string
	NewEmployeeNo        *string
	NewEmployeeName      *string
}
