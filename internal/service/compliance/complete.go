package compliance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ellishaven/careops-backend/internal/domain"
	"github.com/ellishaven/careops-backend/pkg/ctxutil"
)

// Complete transitions a compliance item to COMPLETED and appends a
// STATUS_CHANGE audit entry naming the caller as actor. The item is
// looked up by id alone; the assignee is not an access boundary. The
// transition is applied unconditionally: completing an already-completed
// item is accepted and advances the completion timestamp.
// Returns ErrUnauthorized without a caller identity and ErrNotFound when
// the item is missing.
func (s *Service) Complete(ctx context.Context, itemID uuid.UUID) (*domain.ComplianceItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("compliance.Complete get item: %w", err)
	}

	oldStatus := item.Status

	completedAt := s.now().UTC()
	updated, err := s.items.SetStatus(ctx, item.ID, domain.ComplianceStatusCompleted, &completedAt)
	if err != nil {
		return nil, fmt.Errorf("compliance.Complete set status: %w", err)
	}

	_, err = s.audits.Append(ctx, &domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeComplianceItem,
		EntityID:   &item.ID,
		Action:     domain.AuditActionStatusChange,
		Changes: map[string]any{
			"name":       item.Name,
			"old_status": oldStatus.String(),
			"new_status": domain.ComplianceStatusCompleted.String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compliance.Complete append audit: %w", err)
	}

	s.log.InfoContext(ctx, "compliance item completed",
		slog.String("item_id", item.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("old_status", oldStatus.String()))

	return updated, nil
}
