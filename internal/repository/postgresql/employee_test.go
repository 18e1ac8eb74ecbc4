package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/employee"
	"github.com/das-hq/duty-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployee(no, name, position string, grade int) employee.Employee {
	return employee.Employee{
		EmployeeNo:   no,
		Name:         name,
		Department:   "생산1팀",
		Position:     position,
		Grade:        grade,
		Factory:      "창원1공장",
		BusinessUnit: "엔진사업부",
		PhoneMobile:  "010-1234-5678",
		IsActive:     true,
	}
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	db := requireTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()

	repo := postgresql.NewEmployeeRepository(db)

	created, err := repo.Create(ctx, newEmployee("E1001", "김철수", "부장", 1))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "E1001", created.EmployeeNo)
	assert.True(t, created.IsActive)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, byID.Name)

	byNo, err := repo.GetByEmployeeNo(ctx, "E1001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNo.ID)
}

func TestEmployeeRepository_DuplicateEmployeeNo(t *testing.T) {
	db := requireTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()

	repo := postgresql.NewEmployeeRepository(db)

	_, err := repo.Create(ctx, newEmployee("E1001", "김철수", "부장", 1))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newEmployee("E1001", "이영희", "차장", 2))
	assert.ErrorIs(t, err, employee.ErrEmployeeNoExists)
}

func TestEmployeeRepository_ListFilters(t *testing.T) {
	db := requireTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()

	repo := postgresql.NewEmployeeRepository(db)

	first := newEmployee("E1001", "김철수", "부장", 1)
	second := newEmployee("E1002", "이영희", "과장", 2)
	second.Factory = "창원2공장"
	third := newEmployee("E1003", "박민수", "대리", 3)
	third.IsActive = false

	for _, e := range []employee.Employee{first, second, third} {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	factory := "창원1공장"
	byFactory, err := repo.List(ctx, employee.EmployeeFilter{Factory: &factory})
	require.NoError(t, err)
	require.Len(t, byFactory, 2)
	assert.Equal(t, "E1001", byFactory[0].EmployeeNo)

	active, err := repo.List(ctx, employee.EmployeeFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestEmployeeRepository_CountAssignmentReferences(t *testing.T) {
	db := requireTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()

	empRepo := postgresql.NewEmployeeRepository(db)
	asgRepo := postgresql.NewAssignmentRepository(db)

	main, err := empRepo.Create(ctx, newEmployee("E1001", "김철수", "부장", 1))
	require.NoError(t, err)
	sub, err := empRepo.Create(ctx, newEmployee("E1020", "박민수", "대리", 3))
	require.NoError(t, err)

	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = asgRepo.Create(ctx, assignment.Assignment{
		DutyDate:    date,
		DayOfWeek:   assignment.DayOfWeekLabel(date),
		ShiftType:   assignment.ShiftDay,
		DayCategory: assignment.DayCategoryHoliday,
		MainDutyID:  main.ID,
		SubDutyID:   sub.ID,
		Status:      assignment.StatusConfirmed,
	})
	require.NoError(t, err)

	count, err := empRepo.CountAssignmentReferences(ctx, main.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = empRepo.CountAssignmentReferences(ctx, sub.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
