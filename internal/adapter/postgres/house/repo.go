// Package house implements the House repository using PostgreSQL.
package house

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

// Repo provides house persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new house repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const houseColumns = `id, name, address, created_at`

const createSQL = `
INSERT INTO houses (id, name, address, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + houseColumns

const getByIDSQL = `
SELECT ` + houseColumns + `
FROM houses
WHERE id = $1`

const listSQL = `
SELECT ` + houseColumns + `
FROM houses
ORDER BY name`

// Create inserts a new house. Returns domain.ErrAlreadyExists for a
// duplicate name.
func (r *Repo) Create(ctx context.Context, h *domain.House) (*domain.House, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		h.ID,
		h.Name,
		h.Address,
		time.Now().UTC().Truncate(time.Microsecond),
	)

	created, err := scanHouse(row)
	if err != nil {
		return nil, mapError(err, "house", h.Name)
	}

	return created, nil
}

// GetByID returns a house by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.House, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	h, err := scanHouse(row)
	if err != nil {
		return nil, mapError(err, "house", id.String())
	}

	return h, nil
}

// List returns all houses ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.House, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list houses: %w", err)
	}
	defer rows.Close()

	houses := []*domain.House{}
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			return nil, err
		}
		houses = append(houses, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return houses, nil
}

func scanHouse(row pgx.Row) (*domain.House, error) {
	var h domain.House

	if err := row.Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt); err != nil {
		return nil, err
	}

	return &h, nil
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
