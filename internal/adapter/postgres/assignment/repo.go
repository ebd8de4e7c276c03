// Package assignment implements the HouseAssignment repository using
// PostgreSQL. The (employee_id, house_id) unique constraint is the source
// of truth for duplicate detection.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ellishaven/careops-backend/internal/adapter/postgres"
	"github.com/ellishaven/careops-backend/internal/domain"
)

// Repo provides house assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const assignmentColumns = `id, employee_id, house_id, created_at`

const createSQL = `
INSERT INTO house_assignments (id, employee_id, house_id, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + assignmentColumns

const listByHouseSQL = `
SELECT ` + assignmentColumns + `
FROM house_assignments
WHERE house_id = $1
ORDER BY created_at`

const listByEmployeeSQL = `
SELECT ` + assignmentColumns + `
FROM house_assignments
WHERE employee_id = $1
ORDER BY created_at`

const coverageSQL = `
SELECT h.id, h.name, e.id, e.name, e.status
FROM house_assignments a
JOIN houses h ON h.id = a.house_id
JOIN employees e ON e.id = a.employee_id
ORDER BY h.name, e.name`

const deleteSQL = `
DELETE FROM house_assignments
WHERE employee_id = $1 AND house_id = $2`

// Create inserts an assignment pair. Returns domain.ErrAlreadyExists when
// the pair already exists and domain.ErrNotFound when either side is
// missing.
func (r *Repo) Create(ctx context.Context, a *domain.HouseAssignment) (*domain.HouseAssignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, createSQL,
		id,
		a.EmployeeID,
		a.HouseID,
		time.Now().UTC().Truncate(time.Microsecond),
	)

	created, err := scanAssignment(row)
	if err != nil {
		return nil, mapError(err, "house_assignment", a.EmployeeID.String()+"/"+a.HouseID.String())
	}

	return created, nil
}

// ListByHouse returns all assignments for a house in creation order.
func (r *Repo) ListByHouse(ctx context.Context, houseID uuid.UUID) ([]*domain.HouseAssignment, error) {
	return r.list(ctx, listByHouseSQL, houseID)
}

// ListByEmployee returns all assignments for an employee in creation order.
func (r *Repo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*domain.HouseAssignment, error) {
	return r.list(ctx, listByEmployeeSQL, employeeID)
}

// Coverage returns every assignment joined with its house and employee
// names, ordered by house then employee. The staffing report is built
// from these rows.
func (r *Repo) Coverage(ctx context.Context) ([]*domain.CoverageRow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, coverageSQL)
	if err != nil {
		return nil, fmt.Errorf("query assignment coverage: %w", err)
	}
	defer rows.Close()

	coverage := []*domain.CoverageRow{}
	for rows.Next() {
		var (
			row    domain.CoverageRow
			status string
		)
		if err := rows.Scan(&row.HouseID, &row.HouseName, &row.EmployeeID, &row.EmployeeName, &status); err != nil {
			return nil, err
		}
		row.EmployeeStatus = domain.EmployeeStatus(status)
		coverage = append(coverage, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coverage, nil
}

// Delete removes an assignment pair. Returns domain.ErrNotFound when the
// pair does not exist.
func (r *Repo) Delete(ctx context.Context, employeeID, houseID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, employeeID, houseID)
	if err != nil {
		return mapError(err, "house_assignment", employeeID.String()+"/"+houseID.String())
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("house_assignment %s/%s: %w", employeeID, houseID, domain.ErrNotFound)
	}

	return nil
}

func (r *Repo) list(ctx context.Context, query string, arg uuid.UUID) ([]*domain.HouseAssignment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list house_assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*domain.HouseAssignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func scanAssignment(row pgx.Row) (*domain.HouseAssignment, error) {
	var a domain.HouseAssignment

	if err := row.Scan(&a.ID, &a.EmployeeID, &a.HouseID, &a.CreatedAt); err != nil {
		return nil, err
	}

	return &a, nil
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
