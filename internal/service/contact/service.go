package contact

import (
	"context"

	"github.com/das-hq/duty-backend-go/internal/domain/contact"
	"github.com/das-hq/duty-backend-go/internal/domain/employee"
)

type ContactServiceImpl struct {
	contactRepo  contact.ContactRepository
	employeeRepo employee.EmployeeRepository
}

func NewContactService(
	contactRepo contact.ContactRepository,
	employeeRepo employee.EmployeeRepository,
) contact.ContactService {
	return &ContactServiceImpl{
		contactRepo:  contactRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *ContactServiceImpl) Upsert(ctx context.Context, req contact.UpsertContactRequest) (contact.ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return contact.ContactResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return contact.ContactResponse{}, err
	}

	if _, err := s.contactRepo.Upsert(ctx, contact.EmergencyContact{
		EmployeeID:  req.EmployeeID,
		PhoneHome:   req.PhoneHome,
		PhoneMobile: req.PhoneMobile,
		Note:        req.Note,
	}); err != nil {
		return contact.ContactResponse{}, err
	}

	// Re-read to pick up the resolved employee identity.
	saved, err := s.contactRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return contact.ContactResponse{}, err
	}
	return contact.ToResponse(saved), nil
}

func (s *ContactServiceImpl) Get(ctx context.Context, employeeID string) (contact.ContactResponse, error) {
	c, err := s.contactRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return contact.ContactResponse{}, err
	}
	return contact.ToResponse(c), nil
}

func (s *ContactServiceImpl) List(ctx context.Context, filter contact.ContactFilter) ([]contact.ContactResponse, error) {
	contacts, err := s.contactRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]contact.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		responses = append(responses, contact.ToResponse(c))
	}
	return responses, nil
}
