package contact

import (
	"github.com/das-hq/duty-backend-go/internal/pkg/validator"
)

type UpsertContactRequest struct {
	EmployeeID  string `json:"employee_id"`
	PhoneHome   string `json:"phone_home,omitempty"`
	PhoneMobile string `json:"phone_mobile"`
	Note        string `json:"note,omitempty"`
}

func (r *UpsertContactRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PhoneMobile) {
		errs = append(errs, validator.ValidationError{Field: "phone_mobile", Message: "is required"})
	} else if !validator.IsValidPhoneNumber(r.PhoneMobile) {
		errs = append(errs, validator.ValidationError{Field: "phone_mobile", Message: "is not a valid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ContactFilter struct {
	Factory    *string
	Department *string
}

type ContactResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeNo   string `json:"employee_no,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	Department   string `json:"department,omitempty"`
	Factory      string `json:"factory,omitempty"`
	PhoneHome    string `json:"phone_home,omitempty"`
	PhoneMobile  string `json:"phone_mobile"`
	Note         string `json:"note,omitempty"`
}

func ToResponse(c EmergencyContact) ContactResponse {
	resp := ContactResponse{
		ID:          c.ID,
		EmployeeID:  c.EmployeeID,
		PhoneHome:   c.PhoneHome,
		PhoneMobile: c.PhoneMobile,
		Note:        c.Note,
	}
	if c.EmployeeNo != nil {
		resp.EmployeeNo = *c.EmployeeNo
	}
	if c.EmployeeName != nil {
		resp.EmployeeName = *c.EmployeeName
	}
	if c.Department != nil {
		resp.Department = *c.Department
	}
	if c.Factory != nil {
		resp.Factory = *c.Factory
	}
	return resp
}
