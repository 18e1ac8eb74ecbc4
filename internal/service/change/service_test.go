package change

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/change"
	"github.com/das-hq/duty-backend-go/internal/domain/employee"
	"github.com/das-hq/duty-backend-go/internal/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeChangeRepo struct {
	changes []change.Change
}

func (r *fakeChangeRepo) Create(_ context.Context, c change.Change) (change.Change, error) {
	c.ID = fmt.Sprintf("c-%d", len(r.changes)+1)
	r.changes = append(r.changes, c)
	return c, nil
}

func (r *fakeChangeRepo) ListByAssignment(_ context.Context, assignmentID string) ([]change.Change, error) {
	var out []change.Change
	for _, c := range r.changes {
		if c.AssignmentID == assignmentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeChangeRepo) ListMonth(_ context.Context, year, month int) ([]change.Change, error) {
	start, end := assignment.MonthWindow(year, month)
	var out []change.Change
	for _, c := range r.changes {
		if !c.ChangeDate.Before(start) && c.ChangeDate.Before(end) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeAssignmentRepo struct {
	assignments map[string]assignment.Assignment
}

func (r *fakeAssignmentRepo) Create(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	r.assignments[a.ID] = a
	return a, nil
}

func (r *fakeAssignmentRepo) GetByID(_ context.Context, id string) (assignment.Assignment, error) {
	a, ok := r.assignments[id]
	if !ok {
		return assignment.Assignment{}, assignment.ErrAssignmentNotFound
	}
	return a, nil
}

func (r *fakeAssignmentRepo) ListMonth(_ context.Context, year, month int) ([]assignment.Assignment, error) {
	return nil, nil
}

func (r *fakeAssignmentRepo) GetByDateShift(_ context.Context, date time.Time, shift assignment.ShiftType) (assignment.Assignment, error) {
	return assignment.Assignment{}, assignment.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) GetLastByCategory(_ context.Context, category assignment.DayCategory, statuses []assignment.Status) (assignment.Assignment, error) {
	return assignment.Assignment{}, assignment.ErrAssignmentNotFound
}

func (r *fakeAssignmentRepo) Update(_ context.Context, req assignment.UpdateAssignmentRequest) (assignment.Assignment, error) {
	a, ok := r.assignments[req.ID]
	if !ok {
		return assignment.Assignment{}, assignment.ErrAssignmentNotFound
	}
	if req.MainDutyID != nil {
		a.MainDutyID = *req.MainDutyID
	}
	if req.SubDutyID != nil {
		a.SubDutyID = *req.SubDutyID
	}
	if req.Status != nil {
		a.Status = assignment.Status(*req.Status)
	}
	r.assignments[req.ID] = a
	return a, nil
}

func (r *fakeAssignmentRepo) Delete(_ context.Context, id string) error { return nil }

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeNo(_ context.Context, no string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error { return nil }

func (r *fakeEmployeeRepo) CountAssignmentReferences(_ context.Context, id string) (int64, error) {
	return 0, nil
}

type fakeNotifier struct {
	sent []notify.Message
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, msg notify.Message) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

func newTestService(notifier notify.Notifier) (change.ChangeService, *fakeChangeRepo, *fakeAssignmentRepo) {
	changeRepo := &fakeChangeRepo{}
	assignmentRepo := &fakeAssignmentRepo{assignments: map[string]assignment.Assignment{
		"a-1": {
			ID:          "a-1",
			DutyDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			ShiftType:   assignment.ShiftNight,
			DayCategory: assignment.DayCategoryHoliday,
			MainDutyID:  "m1",
			SubDutyID:   "s1",
			Status:      assignment.StatusConfirmed,
		},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"m1": {ID: "m1", EmployeeNo: "E1001", Name: "김부장", PhoneMobile: "010-1111-2222"},
		"m2": {ID: "m2", EmployeeNo: "E1002", Name: "이차장", PhoneMobile: "010-3333-4444"},
		"s1": {ID: "s1", EmployeeNo: "E1020", Name: "박대리", PhoneMobile: "010-5555-6666"},
	}}
	logger := slog.New(slog.DiscardHandler)
	svc := NewChangeService(fakeTxManager{}, changeRepo, assignmentRepo, employeeRepo, notifier, logger)
	return svc, changeRepo, assignmentRepo
}

func validRequest() change.RecordChangeRequest {
	return change.RecordChangeRequest{
		AssignmentID:  "a-1",
		Role:          "main",
		NewEmployeeID: "m2",
		Reason:        "business_trip",
		ChangeDate:    "2025-02-27",
	}
}

func TestRecordChange_Success(t *testing.T) {
	t.Parallel()
	notifier := &fakeNotifier{}
	svc, changeRepo, assignmentRepo := newTestService(notifier)

	resp, err := svc.RecordChange(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "m1", resp.OriginalEmployeeID)
	assert.Equal(t, "m2", resp.NewEmployeeID)
	assert.Equal(t, "business_trip", resp.Reason)

	require.Len(t, changeRepo.changes, 1)

	mutated := assignmentRepo.assignments["a-1"]
	assert.Equal(t, "m2", mutated.MainDutyID)
	assert.Equal(t, "s1", mutated.SubDutyID)
	assert.Equal(t, assignment.StatusChanged, mutated.Status)

	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].Recipients, "010-3333-4444")
}

func TestRecordChange_SubRole(t *testing.T) {
	t.Parallel()
	svc, _, assignmentRepo := newTestService(&fakeNotifier{})

	req := validRequest()
	req.Role = "sub"
	req.NewEmployeeID = "m2"

	resp, err := svc.RecordChange(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "s1", resp.OriginalEmployeeID)

	mutated := assignmentRepo.assignments["a-1"]
	assert.Equal(t, "m1", mutated.MainDutyID)
	assert.Equal(t, "m2", mutated.SubDutyID)
}

func TestRecordChange_SameEmployee(t *testing.T) {
	t.Parallel()
	svc, changeRepo, _ := newTestService(&fakeNotifier{})

	req := validRequest()
	req.NewEmployeeID = "m1"

	_, err := svc.RecordChange(context.Background(), req)
	assert.ErrorIs(t, err, change.ErrSameEmployee)
	assert.Empty(t, changeRepo.changes)
}

func TestRecordChange_AssignmentNotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(&fakeNotifier{})

	req := validRequest()
	req.AssignmentID = "missing"

	_, err := svc.RecordChange(context.Background(), req)
	assert.ErrorIs(t, err, assignment.ErrAssignmentNotFound)
}

func TestRecordChange_UnknownReplacement(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(&fakeNotifier{})

	req := validRequest()
	req.NewEmployeeID = "nope"

	_, err := svc.RecordChange(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordChange_InvalidReason(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(&fakeNotifier{})

	req := validRequest()
	req.Reason = "vacation"

	_, err := svc.RecordChange(context.Background(), req)
	assert.Error(t, err)
}

func TestRecordChange_NotificationFailureTolerated(t *testing.T) {
	t.Parallel()
	notifier := &fakeNotifier{err: errors.New("webhook down")}
	svc, changeRepo, assignmentRepo := newTestService(notifier)

	_, err := svc.RecordChange(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Len(t, changeRepo.changes, 1)
	assert.Equal(t, assignment.StatusChanged, assignmentRepo.assignments["a-1"].Status)
}

func TestListByAssignment_UnknownAssignment(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(&fakeNotifier{})

	_, err := svc.ListByAssignment(context.Background(), "missing")
	assert.ErrorIs(t, err, assignment.ErrAssignmentNotFound)
}

func TestListMonth(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(&fakeNotifier{})
	ctx := context.Background()

	_, err := svc.RecordChange(ctx, validRequest())
	require.NoError(t, err)

	february, err := svc.ListMonth(ctx, 2025, 2)
	require.NoError(t, err)
	assert.Len(t, february, 1)

	march, err := svc.ListMonth(ctx, 2025, 3)
	require.NoError(t, err)
	assert.Empty(t, march)
}
