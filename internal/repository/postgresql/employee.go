package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/grupo-santin/obras-backend-go/internal/domain/employee"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			matricula, full_name, job_function, abbreviation, admission_date, labor_class, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING matricula, full_name, job_function, abbreviation, admission_date, labor_class, status,
			created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.Matricula, newEmployee.FullName, newEmployee.JobFunction,
		newEmployee.Abbreviation, newEmployee.AdmissionDate, newEmployee.LaborClass, newEmployee.Status,
	).Scan(
		&created.Matricula, &created.FullName, &created.JobFunction,
		&created.Abbreviation, &created.AdmissionDate, &created.LaborClass, &created.Status,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrMatriculaExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByMatricula implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByMatricula(ctx context.Context, matricula string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT matricula, full_name, job_function, abbreviation, admission_date, labor_class, status,
			created_at, updated_at
		FROM employees
		WHERE matricula = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, matricula).Scan(
		&emp.Matricula, &emp.FullName, &emp.JobFunction,
		&emp.Abbreviation, &emp.AdmissionDate, &emp.LaborClass, &emp.Status,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", matricula, err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT matricula, full_name, job_function, abbreviation, admission_date, labor_class, status,
			created_at, updated_at
		FROM employees
		ORDER BY matricula
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.Matricula, &emp.FullName, &emp.JobFunction,
			&emp.Abbreviation, &emp.AdmissionDate, &emp.LaborClass, &emp.Status,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET full_name = $1, job_function = $2, abbreviation = $3, admission_date = $4,
			labor_class = $5, status = $6, updated_at = NOW()
		WHERE matricula = $7
	`

	// Updating a missing matricula is a no-op success, mirroring the
	// idempotent delete.
	_, err := q.Exec(ctx, query,
		emp.FullName, emp.JobFunction, emp.Abbreviation, emp.AdmissionDate,
		emp.LaborClass, emp.Status, emp.Matricula,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", emp.Matricula, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository. Deleting a missing
// matricula succeeds.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, matricula string) error {
	q := GetQuerier(ctx, e.db)

	_, err := q.Exec(ctx, `DELETE FROM employees WHERE matricula = $1`, matricula)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", matricula, err)
	}
	return nil
}
