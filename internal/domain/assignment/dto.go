package assignment

import (
	"time"

	"github.com/das-hq/duty-backend-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	DutyDate   string `json:"duty_date"` // YYYY-MM-DD
	ShiftType  string `json:"shift_type"`
	MainDutyID string `json:"main_duty_id"`
	SubDutyID  string `json:"sub_duty_id"`
	Status     string `json:"status,omitempty"` // defaults to scheduled
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.DutyDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "duty_date", Message: "must be YYYY-MM-DD"})
	}
	if !ValidShiftType(r.ShiftType) {
		errs = append(errs, validator.ValidationError{Field: "shift_type", Message: "must be 'day' or 'night'"})
	}
	if validator.IsEmpty(r.MainDutyID) {
		errs = append(errs, validator.ValidationError{Field: "main_duty_id", Message: "is required"})
	}
	if validator.IsEmpty(r.SubDutyID) {
		errs = append(errs, validator.ValidationError{Field: "sub_duty_id", Message: "is required"})
	}
	if r.Status != "" && !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of scheduled, confirmed, changed, completed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentRequest struct {
	ID         string
	MainDutyID *string `json:"main_duty_id,omitempty"`
	SubDutyID  *string `json:"sub_duty_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !ValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of scheduled, confirmed, changed, completed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID           string `json:"id"`
	DutyDate     string `json:"duty_date"`
	DayOfWeek    string `json:"day_of_week"`
	ShiftType    string `json:"shift_type"`
	DayCategory  string `json:"day_category"`
	MainDutyID   string `json:"main_duty_id"`
	MainDutyNo   string `json:"main_duty_no,omitempty"`
	MainDutyName string `json:"main_duty_name,omitempty"`
	SubDutyID    string `json:"sub_duty_id"`
	SubDutyNo    string `json:"sub_duty_no,omitempty"`
	SubDutyName  string `json:"sub_duty_name,omitempty"`
	Status       string `json:"status"`
}

func ToResponse(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:          a.ID,
		DutyDate:    a.DutyDate.Format("2006-01-02"),
		DayOfWeek:   a.DayOfWeek,
		ShiftType:   string(a.ShiftType),
		DayCategory: string(a.DayCategory),
		MainDutyID:  a.MainDutyID,
		SubDutyID:   a.SubDutyID,
		Status:      string(a.Status),
	}
	if a.MainDutyNo != nil {
		resp.MainDutyNo = *a.MainDutyNo
	}
	if a.MainDutyName != nil {
		resp.MainDutyName = *a.MainDutyName
	}
	if a.SubDutyNo != nil {
		resp.SubDutyNo = *a.SubDutyNo
	}
	if a.SubDutyName != nil {
		resp.SubDutyName = *a.SubDutyName
	}
	return resp
}

// NextAssigneeResponse carries the rotation engine's pick for one slot.
type NextAssigneeResponse struct {
	Role        string  `json:"role"`
	DayCategory string  `json:"day_category"`
	EmployeeID  *string `json:"employee_id"`
	EmployeeNo  *string `json:"employee_no"`
	Name        *string `json:"name"`
}

// GenerateMonthResult reports what the bulk generator did for one slot.
type GenerateMonthResult struct {
	DutyDate   string  `json:"duty_date"`
	ShiftType  string  `json:"shift_type"`
	Created    bool    `json:"created"`
	SkipReason *string `json:"skip_reason,omitempty"`
}

// MonthWindow converts (year, month) into the [first, firstOfNext) date
// window used by range reads.
func MonthWindow(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}
