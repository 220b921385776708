package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// Logout revokes all refresh tokens of the authenticated caller.
// Access tokens stay valid until they expire.
func (s *Service) Logout(ctx context.Context) error {
	caller := access.CallerFromCtx(ctx)
	if !caller.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByAccount(ctx, caller.AccountID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "account logged out", slog.String("account_id", caller.AccountID.String()))
	return nil
}

// CleanupExpiredTokens removes expired and revoked refresh tokens.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int64("count", count))
	}

	return count, nil
}
