// Package compliance implements compliance item operations: completion
// with audit trail and per-user listing.
package compliance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ellishaven/careops-backend/internal/domain"
)

// itemRepo defines the compliance item repository interface needed by the service.
type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status domain.ComplianceStatus) ([]*domain.ComplianceItem, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ComplianceStatus, completedAt *time.Time) (*domain.ComplianceItem, error)
}

// auditRepo defines the audit log interface needed by the service.
type auditRepo interface {
	Append(ctx context.Context, rec *domain.AuditRecord) (*domain.AuditRecord, error)
}

// Service implements compliance operations.
type Service struct {
	log    *slog.Logger
	items  itemRepo
	audits auditRepo
	now    func() time.Time
}

// NewService creates a new compliance service instance.
func NewService(logger *slog.Logger, items itemRepo, audits auditRepo) *Service {
	return &Service{
		log:    logger.With("service", "compliance"),
		items:  items,
		audits: audits,
		now:    time.Now,
	}
}
