// Package employee implements the Employee repository using PostgreSQL.
package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ellishaven/careops-backend/internal/adapter/postgres"
	"github.com/ellishaven/careops-backend/internal/domain"
)

// Repo provides employee persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new employee repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const employeeColumns = `id, name, email, phone, status, created_at`

const createSQL = `
INSERT INTO employees (id, name, email, phone, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + employeeColumns

const getByIDSQL = `
SELECT ` + employeeColumns + `
FROM employees
WHERE id = $1`

// Create inserts a new employee. Returns domain.ErrAlreadyExists for a
// duplicate email.
func (r *Repo) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		e.ID,
		e.Name,
		e.Email,
		e.Phone,
		string(e.Status),
		time.Now().UTC().Truncate(time.Microsecond),
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, mapError(err, "employee", e.Email)
	}

	return created, nil
}

// GetByID returns an employee by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	e, err := scanEmployee(row)
	if err != nil {
		return nil, mapError(err, "employee", id.String())
	}

	return e, nil
}

// List returns employees ordered by name. Passing an empty status lists
// everyone; otherwise only employees in that status are returned.
func (r *Repo) List(ctx context.Context, status domain.EmployeeStatus) ([]*domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(employeeColumns).
		From("employees").
		OrderBy("name").
		PlaceholderFormat(sq.Dollar)

	if status != "" {
		builder = builder.Where(sq.Eq{"status": string(status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build employees query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := []*domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var (
		e      domain.Employee
		status string
	)

	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &status, &e.CreatedAt); err != nil {
		return nil, err
	}

	e.Status = domain.EmployeeStatus(status)

	return &e, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, key, err)
}
