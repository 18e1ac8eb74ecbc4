package contact

import "context"

type ContactService interface {
	Upsert(ctx context.Context, req UpsertContactRequest) (ContactResponse, error)
	Get(ctx context.Context, employeeID string) (ContactResponse, error)
	List(ctx context.Context, filter ContactFilter) ([]ContactResponse, error)
}
