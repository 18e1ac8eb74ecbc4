package dutylog

import (
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/pkg/validator"
)

type SaveLogRequest struct {
	LogDate            string                         `json:"log_date"` // YYYY-MM-DD
	Factory            string                         `json:"factory"`
	ShiftType          string                         `json:"shift_type"`
	WorkforceStatus    map[string]DepartmentWorkforce `json:"workforce_status"`
	ConstructionStatus map[string]ConstructionBlock   `json:"construction_status"`
	Issues             string                         `json:"issues,omitempty"`
	SpecialNotes       string                         `json:"special_notes,omitempty"`
}

func (r *SaveLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.LogDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "log_date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Factory) {
		errs = append(errs, validator.ValidationError{Field: "factory", Message: "is required"})
	}
	if !assignment.ValidShiftType(r.ShiftType) {
		errs = append(errs, validator.ValidationError{Field: "shift_type", Message: "must be 'day' or 'night'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLogRequest struct {
	Reason string `json:"reason"`
}

type LogResponse struct {
	ID                 string                         `json:"id"`
	LogDate            string                         `json:"log_date"`
	Factory            string                         `json:"factory"`
	ShiftType          string                         `json:"shift_type"`
	WorkforceStatus    map[string]DepartmentWorkforce `json:"workforce_status"`
	ConstructionStatus map[string]ConstructionBlock   `json:"construction_status"`
	Issues             string                         `json:"issues,omitempty"`
	SpecialNotes       string                         `json:"special_notes,omitempty"`
	ApprovalStatus     string                         `json:"approval_status"`
	ApprovedAt         *time.Time                     `json:"approved_at,omitempty"`
	RejectReason       *string                        `json:"reject_reason,omitempty"`
}

func ToResponse(l DutyLog) LogResponse {
	return LogResponse{
		ID:                 l.ID,
		LogDate:            l.LogDate.Format("2006-01-02"),
		Factory:            l.Factory,
		ShiftType:          string(l.ShiftType),
		WorkforceStatus:    l.WorkforceStatus,
		ConstructionStatus: l.ConstructionStatus,
		Issues:             l.Issues,
		SpecialNotes:       l.SpecialNotes,
		ApprovalStatus:     string(l.ApprovalStatus),
		ApprovedAt:         l.ApprovedAt,
		RejectReason:       l.RejectReason,
	}
}
