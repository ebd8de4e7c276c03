// Package compliance implements the ComplianceItem repository using
// PostgreSQL. All queries use raw SQL; the status filter on List is built
// with squirrel.
package compliance

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

// Repo provides compliance item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new compliance repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const itemColumns = `id, user_id, name, description, status, due_at, completed_at, created_at, updated_at`

// Compliance items are looked up by id alone: any authenticated staff
// member may act on any item. user_id records the assignee, not an
// access boundary (unlike notifications).
const getByIDSQL = `
SELECT ` + itemColumns + `
FROM compliance_items
WHERE id = $1`

const createSQL = `
INSERT INTO compliance_items (id, user_id, name, description, status, due_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + itemColumns

const completeSQL = `
UPDATE compliance_items
SET status = $2, completed_at = $3, updated_at = now()
WHERE id = $1
RETURNING ` + itemColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a compliance item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	item, err := scanItem(row)
	if err != nil {
		return nil, mapError(err, "compliance_item", id)
	}

	return item, nil
}

// ListByUser returns compliance items assigned to a user, newest first.
// Passing an empty status lists all items regardless of status.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, status domain.ComplianceStatus) ([]*domain.ComplianceItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(itemColumns).
		From("compliance_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if status != "" {
		builder = builder.Where(sq.Eq{"status": string(status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build compliance_items query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list compliance_items by user: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new compliance item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, item *domain.ComplianceItem) (*domain.ComplianceItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		item.ID,
		item.UserID,
		item.Name,
		item.Description,
		string(item.Status),
		item.DueAt,
		now,
	)

	created, err := scanItem(row)
	if err != nil {
		return nil, mapError(err, "compliance_item", item.ID)
	}

	return created, nil
}

// SetStatus applies a status transition and the matching completion
// timestamp in one statement. The update is unconditional on the prior
// status: re-completing a COMPLETED item succeeds and advances
// completed_at. completedAt must be nil for any status other than
// COMPLETED so the writer-enforced pairing invariant holds.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ComplianceStatus, completedAt *time.Time) (*domain.ComplianceItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, completeSQL, id, string(status), completedAt)

	updated, err := scanItem(row)
	if err != nil {
		return nil, mapError(err, "compliance_item", id)
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.ComplianceItem, error) {
	var (
		id          uuid.UUID
		userID      uuid.UUID
		name        string
		description *string
		status      string
		dueAt       *time.Time
		completedAt *time.Time
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&id, &userID, &name, &description, &status, &dueAt, &completedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &domain.ComplianceItem{
		ID:          id,
		UserID:      userID,
		Name:        name,
		Description: description,
		Status:      domain.ComplianceStatus(status),
		DueAt:       dueAt,
		CompletedAt: completedAt,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func scanItems(rows pgx.Rows) ([]*domain.ComplianceItem, error) {
	items := []*domain.ComplianceItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
