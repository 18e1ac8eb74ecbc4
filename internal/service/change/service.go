package change

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/change"
	"github.com/das-hq/duty-backend-go/internal/domain/employee"
	"github.com/das-hq/duty-backend-go/internal/pkg/database"
	"github.com/das-hq/duty-backend-go/internal/pkg/notify"
)

type ChangeServiceImpl struct {
	txm            database.TxManager
	changeRepo     change.ChangeRepository
	assignmentRepo assignment.AssignmentRepository
	employeeRepo   employee.EmployeeRepository
	notifier       notify.Notifier
	logger         *slog.Logger
}

func NewChangeService(
	txm database.TxManager,
	changeRepo change.ChangeRepository,
	assignmentRepo assignment.AssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	notifier notify.Notifier,
	logger *slog.Logger,
) change.ChangeService {
	return &ChangeServiceImpl{
		txm:            txm,
		changeRepo:     changeRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *ChangeServiceImpl) RecordChange(ctx context.Context, req change.RecordChangeRequest) (change.ChangeResponse, error) {
	if err := req.Validate(); err != nil {
		return change.ChangeResponse{}, err
	}

	a, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return change.ChangeResponse{}, err
	}

	role := assignment.DutyRole(req.Role)
	originalID := a.MainDutyID
	if role == assignment.RoleSub {
		originalID = a.SubDutyID
	}
	if originalID == req.NewEmployeeID {
		return change.ChangeResponse{}, change.ErrSameEmployee
	}

	newEmp, err := s.employeeRepo.GetByID(ctx, req.NewEmployeeID)
	if err != nil {
		return change.ChangeResponse{}, err
	}

	changeDate, _ := time.Parse("2006-01-02", req.ChangeDate)

	// The audit row and the roster mutation commit together or not at all.
	var recorded change.Change
	err = s.txm.WithinTransaction(ctx, func(txCtx context.Context) error {
		recorded, err = s.changeRepo.Create(txCtx, change.Change{
			AssignmentID:       req.AssignmentID,
			Role:               role,
			OriginalEmployeeID: originalID,
			NewEmployeeID:      req.NewEmployeeID,
			Reason:             change.Reason(req.Reason),
			ChangeDate:         changeDate,
		})
		if err != nil {
			return err
		}

		update := assignment.UpdateAssignmentRequest{ID: req.AssignmentID}
		status := string(assignment.StatusChanged)
		update.Status = &status
		if role == assignment.RoleMain {
			update.MainDutyID = &req.NewEmployeeID
		} else {
			update.SubDutyID = &req.NewEmployeeID
		}
		if _, err := s.assignmentRepo.Update(txCtx, update); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return change.ChangeResponse{}, err
	}

	// Notification is best effort; the substitution already committed.
	msg := notify.Message{
		Recipients: []string{newEmp.PhoneMobile},
		Subject:    "당직 변경 안내",
		Body: fmt.Sprintf("%s %s 당직이 %s 님으로 변경되었습니다.",
			a.DutyDate.Format("2006-01-02"), a.ShiftType, newEmp.Name),
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Warn("failed to send change notification",
			slog.String("assignment_id", req.AssignmentID),
			slog.Any("error", err),
		)
	}

	return change.ToResponse(recorded), nil
}

func (s *ChangeServiceImpl) ListByAssignment(ctx context.Context, assignmentID string) ([]change.ChangeResponse, error) {
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		return nil, err
	}

	changes, err := s.changeRepo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	return toResponses(changes), nil
}

func (s *ChangeServiceImpl) ListMonth(ctx context.Context, year, month int) ([]change.ChangeResponse, error) {
	changes, err := s.changeRepo.ListMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return toResponses(changes), nil
}

func toResponses(changes []change.Change) []change.ChangeResponse {
	responses := make([]change.ChangeResponse, 0, len(changes))
	for _, c := range changes {
		responses = append(responses, change.ToResponse(c))
	}
	return responses
}
