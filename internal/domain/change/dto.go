package change

import (
	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/pkg/validator"
)

type RecordChangeRequest struct {
	AssignmentID  string `json:"assignment_id"`
	Role          string `json:"role"`
	NewEmployeeID string `json:"new_employee_id"`
	Reason        string `json:"reason"`
	ChangeDate    string `json:"change_date"` // YYYY-MM-DD
}

func (r *RecordChangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{Field: "assignment_id", Message: "is required"})
	}
	if !assignment.ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'main' or 'sub'"})
	}
	if validator.IsEmpty(r.NewEmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "new_employee_id", Message: "is required"})
	}
	if !ValidReason(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is not a recognized change reason"})
	}
	if _, ok := validator.IsValidDate(r.ChangeDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "change_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangeResponse struct {
	ID                   string `json:"id"`
	AssignmentID         string `json:"assignment_id"`
	Role                 string `json:"role"`
	OriginalEmployeeID   string `json:"original_employee_id"`
	OriginalEmployeeNo   string `json:"original_employee_no,omitempty"`
	OriginalEmployeeName string `json:"original_employee_name,omitempty"`
	NewEmployeeID        string `json:"new_employee_id"`
	NewEmployeeNo        string `json:"new_employee_no,omitempty"`
	NewEmployeeName      string `json:"new_employee_name,omitempty"`
	Reason               string `json:"reason"`
	ChangeDate           string `json:"change_date"`
}

func ToResponse(c Change) ChangeResponse {
	resp := ChangeResponse{
		ID:                 c.ID,
		AssignmentID:       c.AssignmentID,
		Role:               string(c.Role),
		OriginalEmployeeID: c.OriginalEmployeeID,
		NewEmployeeID:      c.NewEmployeeID,
		Reason:             string(c.Reason),
		ChangeDate:         c.ChangeDate.Format("2006-01-02"),
	}
	if c.OriginalEmployeeNo != nil {
		resp.OriginalEmployeeNo = *c.OriginalEmployeeNo
	}
	if c.OriginalEmployeeName != nil {
		resp.OriginalEmployeeName = *c.OriginalEmployeeName
	}
	if c.NewEmployeeNo != nil {
		resp.NewEmployeeNo = *c.NewEmployeeNo
	}
	if c.NewEmployeeName != nil {
		resp.NewEmployeeName = *c.NewEmployeeName
	}
	return resp
}
