// Package notification implements notification operations. Marking a
// notification read deliberately writes no audit entry.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ellishaven/careops-backend/internal/domain"
	"github.com/ellishaven/careops-backend/pkg/ctxutil"
)

// notificationRepo defines the repository interface needed by the service.
type notificationRepo interface {
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*domain.Notification, error)
}

// Service implements notification operations.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
	}
}

// MarkRead flags a notification owned by the caller as read. The flip is
// unconditional; re-reading an already-read notification succeeds.
// Returns ErrUnauthorized without a caller identity and ErrNotFound when
// the notification is missing or owned by someone else.
func (s *Service) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.notifications.MarkRead(ctx, notificationID, userID); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}

	s.log.InfoContext(ctx, "notification marked read",
		slog.String("notification_id", notificationID.String()),
		slog.String("user_id", userID.String()))

	return nil
}

// List returns the caller's notifications, optionally restricted to
// unread ones.
func (s *Service) List(ctx context.Context, unreadOnly bool) ([]*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	notifications, err := s.notifications.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}

	return notifications, nil
}
