// Package audit implements the append-only audit log repository using
// PostgreSQL. Audit rows are never updated or deleted.
package audit

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

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const auditColumns = `id, user_id, entity_type, entity_id, action, changes, created_at`

const appendSQL = `
INSERT INTO audit_logs (id, user_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + auditColumns

const listByUserSQL = `
SELECT ` + auditColumns + `
FROM audit_logs
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

const listByEntitySQL = `
SELECT ` + auditColumns + `
FROM audit_logs
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC`

// Append inserts a new audit record. The changes map is stored as jsonb;
// pgx serializes it directly.
func (r *Repo) Append(ctx context.Context, rec *domain.AuditRecord) (*domain.AuditRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	row := querier.QueryRow(ctx, appendSQL,
		id,
		rec.UserID,
		string(rec.EntityType),
		rec.EntityID,
		string(rec.Action),
		rec.Changes,
		createdAt,
	)

	appended, err := scanRecord(row)
	if err != nil {
		return nil, mapError(err, "audit_log", id)
	}

	return appended, nil
}

// ListByUser returns the most recent audit records for a user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit_logs by user: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByEntity returns all audit records for an entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]*domain.AuditRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByEntitySQL, string(entityType), entityID)
	if err != nil {
		return nil, fmt.Errorf("list audit_logs by entity: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecord(row pgx.Row) (*domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
	)

	if err := row.Scan(&rec.ID, &rec.UserID, &entityType, &rec.EntityID, &action, &rec.Changes, &rec.CreatedAt); err != nil {
		return nil, err
	}

	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	return &rec, nil
}

func scanRecords(rows pgx.Rows) ([]*domain.AuditRecord, error) {
	records := []*domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

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
