package compliance

import (
	"context"
	"fmt"

	"github.com/ellishaven/careops-backend/internal/domain"
	"github.com/ellishaven/careops-backend/pkg/ctxutil"
)

// List returns the caller's compliance items, optionally filtered by
// status. An empty status lists everything.
func (s *Service) List(ctx context.Context, status domain.ComplianceStatus) ([]*domain.ComplianceItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if status != "" && !status.IsValid() {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "status", Message: "unknown status"},
		}}
	}

	items, err := s.items.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("compliance.List: %w", err)
	}

	return items, nil
}
