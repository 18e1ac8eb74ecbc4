package postgresql

import (
	"context"
	"fmt"

	"github.com/das-hq/duty-backend-go/internal/domain/assignment"
	"github.com/das-hq/duty-backend-go/internal/domain/change"
	"github.com/das-hq/duty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type changeRepository struct {
	db *database.DB
}

func NewChangeRepository(db *database.DB) change.ChangeRepository {
	return &changeRepository{db: db}
}

func (r *changeRepository) Create(ctx context.Context, c change.Change) (change.Change, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO duty_changes (
			assignment_id, duty_role, original_employee_id, new_employee_id,
			change_reason, change_date
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, assignment_id, duty_role, original_employee_id,
			new_employee_id, change_reason, change_date, created_at
	`

	var created change.Change
	err := q.QueryRow(ctx, query,
		c.AssignmentID, c.Role, c.OriginalEmployeeID, c.NewEmployeeID,
		c.Reason, c.ChangeDate,
	).Scan(
		&created.ID, &created.AssignmentID, &created.Role,
		&created.OriginalEmployeeID, &created.NewEmployeeID,
		&created.Reason, &created.ChangeDate, &created.CreatedAt,
	)
	if err != nil {
		return change.Change{}, fmt.Errorf("failed to create duty change: %w", err)
	}

	return created, nil
}

const changeSelect = `
	SELECT c.id, c.assignment_id, c.duty_role, c.original_employee_id,
		c.new_employee_id, c.change_reason, c.change_date, c.created_at,
		o.employee_no, o.name, n.employee_no, n.name
	FROM duty_changes c
	JOIN employees o ON c.original_employee_id = o.id
	JOIN employees n ON c.new_employee_id = n.id
`

func scanChanges(rows pgx.Rows) ([]change.Change, error) {
	defer rows.Close()

	var changes []change.Change
	for rows.Next() {
		var c change.Change
		if err := rows.Scan(
			&c.ID, &c.AssignmentID, &c.Role, &c.OriginalEmployeeID,
			&c.NewEmployeeID, &c.Reason, &c.ChangeDate, &c.CreatedAt,
			&c.OriginalEmployeeNo, &c.OriginalEmployeeName,
			&c.NewEmployeeNo, &c.NewEmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan duty change: %w", err)
		}
		changes = append(changes, c)
	}

	return changes, nil
}

func (r *changeRepository) ListByAssignment(ctx context.Context, assignmentID string) ([]change.Change, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, changeSelect+` WHERE c.assignment_id = $1 ORDER BY c.created_at`, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty changes: %w", err)
	}

	return scanChanges(rows)
}

func (r *changeRepository) ListMonth(ctx context.Context, year, month int) ([]change.Change, error) {
	q := GetQuerier(ctx, r.db)

	start, end := assignment.MonthWindow(year, month)

	rows, err := q.Query(ctx, changeSelect+` WHERE c.change_date >= $1 AND c.change_date < $2 ORDER BY c.change_date, c.created_at`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty changes: %w", err)
	}

	return scanChanges(rows)
}
