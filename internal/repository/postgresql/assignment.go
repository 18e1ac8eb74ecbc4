package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepository struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepository{db: db}
}

const assignmentColumns = `a.id, a.duty_date, a.day_of_week, a.shift_type,
	a.day_category, a.main_duty_id, a.sub_duty_id, a.status, a.created_at, a.updated_at`

func (r *assignmentRepository) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO duty_assignments (
			duty_date, day_of_week, shift_type, day_category,
			main_duty_id, sub_duty_id, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, duty_date, day_of_week, shift_type, day_category,
			main_duty_id, sub_duty_id, status, created_at, updated_at
	`

	var created assignment.Assignment
	err := q.QueryRow(ctx, query,
		a.DutyDate, a.DayOfWeek, a.ShiftType, a.DayCategory,
		a.MainDutyID, a.SubDutyID, a.Status,
	).Scan(
		&created.ID, &created.DutyDate, &created.DayOfWeek, &created.ShiftType,
		&created.DayCategory, &created.MainDutyID, &created.SubDutyID,
		&created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_assignment_slot") {
			return assignment.Assignment{}, assignment.ErrAssignmentSlotTaken
		}
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return created, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `,
			m.employee_no, m.name, s.employee_no, s.name
		FROM duty_assignments a
		JOIN employees m ON a.main_duty_id = m.id
		JOIN employees s ON a.sub_duty_id = s.id
		WHERE a.id = $1
	`

	var a assignment.Assignment
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.DutyDate, &a.DayOfWeek, &a.ShiftType, &a.DayCategory,
		&a.MainDutyID, &a.SubDutyID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.MainDutyNo, &a.MainDutyName, &a.SubDutyNo, &a.SubDutyName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

func (r *assignmentRepository) ListMonth(ctx context.Context, year, month int) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	start, end := assignment.MonthWindow(year, month)

	query := `
		SELECT ` + assignmentColumns + `,
			m.employee_no, m.name, s.employee_no, s.name
		FROM duty_assignments a
		JOIN employees m ON a.main_duty_id = m.id
		JOIN employees s ON a.sub_duty_id = s.id
		WHERE a.duty_date >= $1 AND a.duty_date < $2
		ORDER BY a.duty_date, a.shift_type
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		if err := rows.Scan(
			&a.ID, &a.DutyDate, &a.DayOfWeek, &a.ShiftType, &a.DayCategory,
			&a.MainDutyID, &a.SubDutyID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.MainDutyNo, &a.MainDutyName, &a.SubDutyNo, &a.SubDutyName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *assignmentRepository) GetByDateShift(ctx context.Context, date time.Time, shift assignment.ShiftType) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM duty_assignments a
		WHERE a.duty_date = $1 AND a.shift_type = $2
	`

	var a assignment.Assignment
	err := q.QueryRow(ctx, query, date, shift).Scan(
		&a.ID, &a.DutyDate, &a.DayOfWeek, &a.ShiftType, &a.DayCategory,
		&a.MainDutyID, &a.SubDutyID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get assignment slot: %w", err)
	}

	return a, nil
}

func (r *assignmentRepository) GetLastByCategory(ctx context.Context, category assignment.DayCategory, statuses []assignment.Status) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	// Night outranks day on a shared date so the later shift is the most
	// recent one.
	query := `
		SELECT ` + assignmentColumns + `
		FROM duty_assignments a
		WHERE a.day_category = $1 AND a.status = ANY($2)
		ORDER BY a.duty_date DESC, (a.shift_type = 'night') DESC
		LIMIT 1
	`

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	var a assignment.Assignment
	err := q.QueryRow(ctx, query, category, statusStrings).Scan(
		&a.ID, &a.DutyDate, &a.DayOfWeek, &a.ShiftType, &a.DayCategory,
		&a.MainDutyID, &a.SubDutyID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get last assignment: %w", err)
	}

	return a, nil
}

func (r *assignmentRepository) Update(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.MainDutyID != nil {
		setParts = append(setParts, fmt.Sprintf("main_duty_id = $%d", argIdx))
		args = append(args, *req.MainDutyID)
		argIdx++
	}
	if req.SubDutyID != nil {
		setParts = append(setParts, fmt.Sprintf("sub_duty_id = $%d", argIdx))
		args = append(args, *req.SubDutyID)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE duty_assignments
		SET %s
		WHERE id = $1
		RETURNING id, duty_date, day_of_week, shift_type, day_category,
			main_duty_id, sub_duty_id, status, created_at, updated_at
	`, strings.Join(setParts, ", "))

	var a assignment.Assignment
	err := q.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.DutyDate, &a.DayOfWeek, &a.ShiftType, &a.DayCategory,
		&a.MainDutyID, &a.SubDutyID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to update assignment: %w", err)
	}

	return a, nil
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM duty_assignments WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}
