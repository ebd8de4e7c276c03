// Package notification implements the Notification repository using
// PostgreSQL.
package notification

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

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const notificationColumns = `id, user_id, title, body, is_read, created_at`

const createSQL = `
INSERT INTO notifications (id, user_id, title, body, is_read, created_at)
VALUES ($1, $2, $3, $4, false, $5)
RETURNING ` + notificationColumns

// Ownership is part of the predicate: a notification belonging to another
// user is indistinguishable from a missing one.
const markReadSQL = `
UPDATE notifications
SET is_read = true
WHERE id = $1 AND user_id = $2`

// Create inserts a new notification for a user.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		n.ID,
		n.UserID,
		n.Title,
		n.Body,
		time.Now().UTC().Truncate(time.Microsecond),
	)

	created, err := scanNotification(row)
	if err != nil {
		return nil, mapError(err, "notification", n.ID)
	}

	return created, nil
}

// MarkRead sets is_read = true on a notification owned by userID.
// Marking an already-read notification succeeds and changes nothing.
// Returns domain.ErrNotFound when the notification does not exist or
// belongs to a different user.
func (r *Repo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markReadSQL, id, userID)
	if err != nil {
		return mapError(err, "notification", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByUser returns a user's notifications, newest first. When unreadOnly
// is set, read notifications are excluded.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(notificationColumns).
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if unreadOnly {
		builder = builder.Where(sq.Eq{"is_read": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notifications query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications by user: %w", err)
	}
	defer rows.Close()

	notifications := []*domain.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification

	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.IsRead, &n.CreatedAt); err != nil {
		return nil, err
	}

	return &n, nil
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
