package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeNo(ctx context.Context, employeeNo string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	CountAssignmentReferences(ctx context.Context, id string) (int64, error)
}
