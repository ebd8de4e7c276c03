package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ellishaven/careops-backend/internal/domain"
	"github.com/ellishaven/careops-backend/pkg/ctxutil"
)

// Logout revokes every refresh token the caller holds and records a
// LOGOUT audit entry. Without a resolved identity it is a no-op success
// and writes no audit entry. The audit write happens before revocation;
// a failed audit write is logged but does not keep the session alive.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}

	email := ctxutil.UserEmailFromCtx(ctx)

	_, err := s.audits.Append(ctx, &domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeUser,
		EntityID:   &userID,
		Action:     domain.AuditActionLogout,
		Changes:    map[string]any{"email": email},
	})
	if err != nil {
		s.log.ErrorContext(ctx, "logout audit write failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}

	if _, err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// CleanupExpiredTokens removes expired and revoked refresh tokens.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	count, err := s.tokens.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int64("count", count))
	}

	return count, nil
}
