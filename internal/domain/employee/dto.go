package employee

import (
	"github.com/das-hq/duty-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeNo   string `json:"employee_no"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Grade        int    `json:"grade"`
	Factory      string `json:"factory"`
	BusinessUnit string `json:"business_unit"`
	PhoneHome    string `json:"phone_home,omitempty"`
	PhoneMobile  string `json:"phone_mobile,omitempty"`
	BankAccount  string `json:"bank_account,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeNo(r.EmployeeNo) {
		errs = append(errs, validator.ValidationError{Field: "employee_no", Message: "must match E#### format"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Grade < GradeMin || r.Grade > GradeMax {
		errs = append(errs, validator.ValidationError{Field: "grade", Message: "must be between 1 and 4"})
	}
	if validator.IsEmpty(r.Factory) {
		errs = append(errs, validator.ValidationError{Field: "factory", Message: "is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string
	Name         *string `json:"name,omitempty"`
	Department   *string `json:"department,omitempty"`
	Position     *string `json:"position,omitempty"`
	Grade        *int    `json:"grade,omitempty"`
	Factory      *string `json:"factory,omitempty"`
	BusinessUnit *string `json:"business_unit,omitempty"`
	PhoneHome    *string `json:"phone_home,omitempty"`
	PhoneMobile  *string `json:"phone_mobile,omitempty"`
	BankAccount  *string `json:"bank_account,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Grade != nil && (*r.Grade < GradeMin || *r.Grade > GradeMax) {
		errs = append(errs, validator.ValidationError{Field: "grade", Message: "must be between 1 and 4"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Factory    *string
	Department *string
	Grade      *int
	ActiveOnly bool
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	EmployeeNo   string `json:"employee_no"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Grade        int    `json:"grade"`
	Factory      string `json:"factory"`
	BusinessUnit string `json:"business_unit"`
	PhoneHome    string `json:"phone_home,omitempty"`
	PhoneMobile  string `json:"phone_mobile,omitempty"`
	BankAccount  string `json:"bank_account,omitempty"`
	IsActive     bool   `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeNo:   e.EmployeeNo,
		Name:         e.Name,
		Department:   e.Department,
		Position:     e.Position,
		Grade:        e.Grade,
		Factory:      e.Factory,
		BusinessUnit: e.BusinessUnit,
		PhoneHome:    e.PhoneHome,
		PhoneMobile:  e.PhoneMobile,
		BankAccount:  e.BankAccount,
		IsActive:     e.IsActive,
	}
}
