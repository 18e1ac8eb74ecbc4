package contact

import "context"

type ContactRepository interface {
	Upsert(ctx context.Context, c EmergencyContact) (EmergencyContact, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (EmergencyContact, error)
	List(ctx context.Context, filter ContactFilter) ([]EmergencyContact, error)
}
