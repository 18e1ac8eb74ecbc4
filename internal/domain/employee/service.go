package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// Delete removes an employee outright; it fails with ErrEmployeeReferenced
	// while any duty assignment still points at the employee. Deactivation via
	// Update(IsActive=false) is the normal path.
	Delete(ctx context.Context, id string) error
}
