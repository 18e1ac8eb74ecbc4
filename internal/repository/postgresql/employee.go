package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/das-hq/duty-backend-go/internal/domain/employee"
	"github.com/das-hq/duty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, employee_no, name, department, position, grade,
	factory, business_unit, phone_home, phone_mobile, bank_account, is_active,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeNo, &e.Name, &e.Department, &e.Position, &e.Grade,
		&e.Factory, &e.BusinessUnit, &e.PhoneHome, &e.PhoneMobile, &e.BankAccount,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_no, name, department, position, grade,
			factory, business_unit, phone_home, phone_mobile, bank_account, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.EmployeeNo, emp.Name, emp.Department, emp.Position, emp.Grade,
		emp.Factory, emp.BusinessUnit, emp.PhoneHome, emp.PhoneMobile,
		emp.BankAccount, emp.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_no") {
			return employee.Employee{}, employee.ErrEmployeeNoExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByEmployeeNo(ctx context.Context, employeeNo string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_no = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeNo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by number: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	var args []interface{}
	argIdx := 1

	if filter.Factory != nil {
		query += fmt.Sprintf(" AND factory = $%d", argIdx)
		args = append(args, *filter.Factory)
		argIdx++
	}
	if filter.Department != nil {
		query += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Grade != nil {
		query += fmt.Sprintf(" AND grade = $%d", argIdx)
		args = append(args, *filter.Grade)
		argIdx++
	}
	if filter.ActiveOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY employee_no"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	appendSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		appendSet("name", *req.Name)
	}
	if req.Department != nil {
		appendSet("department", *req.Department)
	}
	if req.Position != nil {
		appendSet("position", *req.Position)
	}
	if req.Grade != nil {
		appendSet("grade", *req.Grade)
	}
	if req.Factory != nil {
		appendSet("factory", *req.Factory)
	}
	if req.BusinessUnit != nil {
		appendSet("business_unit", *req.BusinessUnit)
	}
	if req.PhoneHome != nil {
		appendSet("phone_home", *req.PhoneHome)
	}
	if req.PhoneMobile != nil {
		appendSet("phone_mobile", *req.PhoneMobile)
	}
	if req.BankAccount != nil {
		appendSet("bank_account", *req.BankAccount)
	}
	if req.IsActive != nil {
		appendSet("is_active", *req.IsActive)
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setParts, ", "), employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) CountAssignmentReferences(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM duty_assignments
		WHERE main_duty_id = $1 OR sub_duty_id = $1
	`

	var count int64
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assignment references: %w", err)
	}

	return count, nil
}
