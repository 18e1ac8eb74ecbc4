package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeNoExists   = errors.New("employee number already exists")
	ErrEmployeeReferenced = errors.New("employee is referenced by duty assignments")
)
