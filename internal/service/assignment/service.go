package assignment

import (
	"context"
	"errors"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/employee"
)

// rotationStatuses are the assignment states that count as rotation history.
// Scheduled and changed records do not move the cursor.
var rotationStatuses = []assignment.Status{
	assignment.StatusConfirmed,
	assignment.StatusCompleted,
}

type AssignmentServiceImpl struct {
	assignmentRepo assignment.AssignmentRepository
	employeeRepo   employee.EmployeeRepository
	rules          assignment.RuleTable
}

func NewAssignmentService(
	assignmentRepo assignment.AssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	rules assignment.RuleTable,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		rules:          rules,
	}
}

// eligiblePool returns the active employees allowed to fill the role on the
// day category, ordered by employee number. The ordering is what makes the
// rotation deterministic.
func (s *AssignmentServiceImpl) eligiblePool(ctx context.Context, role assignment.DutyRole, category assignment.DayCategory) ([]employee.Employee, error) {
	rule, ok := s.rules[assignment.RuleKey{DayCategory: category, Role: role}]
	if !ok {
		return nil, assignment.ErrInvalidRequestData
	}

	emps, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	var pool []employee.Employee
	for _, emp := range emps {
		if rule.Matches(emp.Grade, emp.Position) {
			pool = append(pool, emp)
		}
	}
	return pool, nil
}

// nextIndex locates the last occupant in the pool and returns the position
// after it, wrapping at the end. An occupant that is no longer in the pool
// restarts the rotation at the front.
func nextIndex(pool []employee.Employee, lastOccupantID string) int {
	for i, emp := range pool {
		if emp.ID == lastOccupantID {
			return (i + 1) % len(pool)
		}
	}
	return 0
}

// occupantForRole reads the role's employee off an assignment record.
func occupantForRole(a assignment.Assignment, role assignment.DutyRole) string {
	if role == assignment.RoleMain {
		return a.MainDutyID
	}
	return a.SubDutyID
}

func (s *AssignmentServiceImpl) NextAssignee(ctx context.Context, role assignment.DutyRole, category assignment.DayCategory) (assignment.NextAssigneeResponse, error) {
	resp := assignment.NextAssigneeResponse{
		Role:        string(role),
		DayCategory: string(category),
	}

	pool, err := s.eligiblePool(ctx, role, category)
	if err != nil {
		return assignment.NextAssigneeResponse{}, err
	}
	if len(pool) == 0 {
		return resp, nil
	}

	idx := 0
	last, err := s.assignmentRepo.GetLastByCategory(ctx, category, rotationStatuses)
	switch {
	case err == nil:
		idx = nextIndex(pool, occupantForRole(last, role))
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		// No rotation history yet; start at the front of the pool.
	default:
		return assignment.NextAssigneeResponse{}, err
	}

	pick := pool[idx]
	resp.EmployeeID = &pick.ID
	resp.EmployeeNo = &pick.EmployeeNo
	resp.Name = &pick.Name
	return resp, nil
}

func (s *AssignmentServiceImpl) ListMonth(ctx context.Context, year, month int) ([]assignment.AssignmentResponse, error) {
	records, err := s.assignmentRepo.ListMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]assignment.AssignmentResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, assignment.ToResponse(a))
	}
	return responses, nil
}

func (s *AssignmentServiceImpl) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.DutyDate)
	if err != nil {
		return assignment.AssignmentResponse{}, assignment.ErrInvalidRequestData
	}

	category := assignment.CategoryForDate(date)
	shift := assignment.ShiftType(req.ShiftType)
	if category == assignment.DayCategoryWeekday && shift == assignment.ShiftDay {
		return assignment.AssignmentResponse{}, assignment.ErrWeekdayDayShift
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.MainDutyID); err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.SubDutyID); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	status := assignment.StatusScheduled
	if req.Status != "" {
		status = assignment.Status(req.Status)
	}

	created, err := s.assignmentRepo.Create(ctx, assignment.Assignment{
		DutyDate:    date,
		DayOfWeek:   assignment.DayOfWeekLabel(date),
		ShiftType:   shift,
		DayCategory: category,
		MainDutyID:  req.MainDutyID,
		SubDutyID:   req.SubDutyID,
		Status:      status,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	return assignment.ToResponse(created), nil
}

func (s *AssignmentServiceImpl) Update(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	if _, err := s.assignmentRepo.GetByID(ctx, req.ID); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	if req.MainDutyID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.MainDutyID); err != nil {
			return assignment.AssignmentResponse{}, err
		}
	}
	if req.SubDutyID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.SubDutyID); err != nil {
			return assignment.AssignmentResponse{}, err
		}
	}

	updated, err := s.assignmentRepo.Update(ctx, req)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	return assignment.ToResponse(updated), nil
}

func (s *AssignmentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.assignmentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.assignmentRepo.Delete(ctx, id)
}

// rotationCursor walks one (category, role) pool during bulk generation. The
// cursor lives in memory because generated records start as scheduled and
// therefore never feed back into the stored rotation history.
type rotationCursor struct {
	pool []employee.Employee
	next int
}

func (c *rotationCursor) pick() (employee.Employee, bool) {
	if len(c.pool) == 0 {
		return employee.Employee{}, false
	}
	emp := c.pool[c.next]
	c.next = (c.next + 1) % len(c.pool)
	return emp, true
}

func (s *AssignmentServiceImpl) cursorFor(ctx context.Context, role assignment.DutyRole, category assignment.DayCategory) (*rotationCursor, error) {
	pool, err := s.eligiblePool(ctx, role, category)
	if err != nil {
		return nil, err
	}
	cursor := &rotationCursor{pool: pool}
	if len(pool) == 0 {
		return cursor, nil
	}

	last, err := s.assignmentRepo.GetLastByCategory(ctx, category, rotationStatuses)
	switch {
	case err == nil:
		cursor.next = nextIndex(pool, occupantForRole(last, role))
	case errors.Is(err, assignment.ErrAssignmentNotFound):
	default:
		return nil, err
	}
	return cursor, nil
}

func (s *AssignmentServiceImpl) GenerateMonth(ctx context.Context, year, month int) ([]assignment.GenerateMonthResult, error) {
	cursors := map[assignment.RuleKey]*rotationCursor{}
	for _, category := range []assignment.DayCategory{assignment.DayCategoryHoliday, assignment.DayCategoryWeekday} {
		for _, role := range []assignment.DutyRole{assignment.RoleMain, assignment.RoleSub} {
			cursor, err := s.cursorFor(ctx, role, category)
			if err != nil {
				return nil, err
			}
			cursors[assignment.RuleKey{DayCategory: category, Role: role}] = cursor
		}
	}

	var results []assignment.GenerateMonthResult
	start, end := assignment.MonthWindow(year, month)
	for date := start; date.Before(end); date = date.AddDate(0, 0, 1) {
		category := assignment.CategoryForDate(date)

		shifts := []assignment.ShiftType{assignment.ShiftNight}
		if category == assignment.DayCategoryHoliday {
			shifts = []assignment.ShiftType{assignment.ShiftDay, assignment.ShiftNight}
		}

		for _, shift := range shifts {
			result, err := s.generateSlot(ctx, date, category, shift, cursors)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
	}
	return results, nil
}

func (s *AssignmentServiceImpl) generateSlot(
	ctx context.Context,
	date time.Time,
	category assignment.DayCategory,
	shift assignment.ShiftType,
	cursors map[assignment.RuleKey]*rotationCursor,
) (assignment.GenerateMonthResult, error) {
	result := assignment.GenerateMonthResult{
		DutyDate:  date.Format("2006-01-02"),
		ShiftType: string(shift),
	}
	skip := func(reason string) assignment.GenerateMonthResult {
		result.SkipReason = &reason
		return result
	}

	_, err := s.assignmentRepo.GetByDateShift(ctx, date, shift)
	switch {
	case err == nil:
		return skip("slot already occupied"), nil
	case errors.Is(err, assignment.ErrAssignmentNotFound):
	default:
		return assignment.GenerateMonthResult{}, err
	}

	mainCursor := cursors[assignment.RuleKey{DayCategory: category, Role: assignment.RoleMain}]
	subCursor := cursors[assignment.RuleKey{DayCategory: category, Role: assignment.RoleSub}]

	if len(mainCursor.pool) == 0 {
		return skip("no eligible employee for main duty"), nil
	}
	if len(subCursor.pool) == 0 {
		return skip("no eligible employee for sub duty"), nil
	}

	mainPick, _ := mainCursor.pick()
	subPick, _ := subCursor.pick()

	if _, err := s.assignmentRepo.Create(ctx, assignment.Assignment{
		DutyDate:    date,
		DayOfWeek:   assignment.DayOfWeekLabel(date),
		ShiftType:   shift,
		DayCategory: category,
		MainDutyID:  mainPick.ID,
		SubDutyID:   subPick.ID,
		Status:      assignment.StatusScheduled,
	}); err != nil {
		return assignment.GenerateMonthResult{}, err
	}

	result.Created = true
	return result, nil
}
