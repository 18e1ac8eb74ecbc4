package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAssignment(t *testing.T, repo assignment.AssignmentRepository, date time.Time, shift assignment.ShiftType, mainID, subID string, status assignment.Status) assignment.Assignment {
	t.Helper()
	a, err := repo.Create(context.Background(), assignment.Assignment{
		DutyDate:    date,
		DayOfWeek:   assignment.DayOfWeekLabel(date),
		ShiftType:   shift,
		DayCategory: assignment.CategoryForDate(date),
		MainDutyID:  mainID,
		SubDutyID:   subID,
		Status:      status,
	})
	require.NoError(t, err)
	return a
}

func TestAssignmentRepository_SlotUniqueness(t *testing.T) {
	db := requireTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()

	empRepo := postgresql.NewEmployeeRepository(db)
	repo := postgresql.NewAssignmentRepository(db)

	main, err := empRepo.Create(ctx, newEmployee("E1001", "김철수", "부장", 1))
	require.NoError(t, err)
	sub, err := empRepo.Create(ctx, newEmployee("E1020", "박민수", "대리", 3))
	require.NoError(t, err)

	saturday := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	createAssignment(t, repo, saturday, assignment.ShiftDay, main.ID, sub.ID, assignment.StatusConfirmed)

	_, err = repo.Create(ctx, assignment.Assignment{
		DutyDate:    saturday,
		DayOfWeek:   assignment.DayOfWeekLabel(saturday),
		ShiftType:   assignment.ShiftDay,
		DayCategory: assignment.DayCategoryHoliday,
		MainDutyID:  sub.ID,
		SubDutyID:   main.ID,
		Status:      assignment.StatusScheduled,
	})
	assert.ErrorIs(t, err, assignment.ErrAssignmentSlotTaken)

	// Same date, other shift is a distinct slot.
	createAssignment(t, repo, saturday, assignment.ShiftNight, sub.ID, main.ID, assignment.StatusConfirmed)
}

func TestAssignmentRepository_GetLastByCategory(t *testing.T) {
	db := requireTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()

	empRepo := postgresql.NewEmployeeRepository(db)
	repo := postgresql.NewAssignmentRepository(db)

	main, err := empRepo.Create(ctx, newEmployee("E1001", "김철수", "부장", 1))
	require.NoError(t, err)
	sub, err := empRepo.Create(ctx, newEmployee("E1020", "박민수", "대리", 3))
	require.NoError(t, err)

	saturday := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	createAssignment(t, repo, saturday, assignment.ShiftDay, main.ID, sub.ID, assignment.StatusCompleted)
	night := createAssignment(t, repo, saturday, assignment.ShiftNight, sub.ID, main.ID, assignment.StatusCompleted)

	// Night shift outranks the day shift on the same date.
	last, err := repo.GetLastByCategory(ctx, assignment.DayCategoryHoliday, []assignment.Status{
		assignment.StatusConfirmed, assignment.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, night.ID, last.ID)

	// Scheduled records never count as rotation history.
	sunday := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	createAssignment(t, repo, sunday, assignment.ShiftDay, main.ID, sub.ID, assignment.StatusScheduled)

	last, err = repo.GetLastByCategory(ctx, assignment.DayCategoryHoliday, []assignment.Status{
		assignment.StatusConfirmed, assignment.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, night.ID, last.ID)

	_, err = repo.GetLastByCategory(ctx, assignment.DayCategoryWeekday, []assignment.Status{
		assignment.StatusConfirmed, assignment.StatusCompleted,
	})
	assert.ErrorIs(t, err, assignment.ErrAssignmentNotFound)
}
