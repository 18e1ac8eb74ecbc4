package employee

import (
	"context"
	"fmt"

	"github.com/das-hq/duty-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		EmployeeNo:   req.EmployeeNo,
		Name:         req.Name,
		Department:   req.Department,
		Position:     req.Position,
		Grade:        req.Grade,
		Factory:      req.Factory,
		BusinessUnit: req.BusinessUnit,
		PhoneHome:    req.PhoneHome,
		PhoneMobile:  req.PhoneMobile,
		BankAccount:  req.BankAccount,
		IsActive:     true,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	refs, err := s.employeeRepo.CountAssignmentReferences(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check assignment references: %w", err)
	}
	if refs > 0 {
		return employee.ErrEmployeeReferenced
	}

	return s.employeeRepo.Delete(ctx, id)
}
