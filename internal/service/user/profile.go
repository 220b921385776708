package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// GetProfile returns the authenticated caller's account.
// Returns ErrUnauthorized for anonymous callers.
func (s *Service) GetProfile(ctx context.Context) (*domain.Account, error) {
	caller := access.CallerFromCtx(ctx)
	if err := access.Authorize(caller, access.OpProfileRead, access.Resource{}).Err(); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, caller.AccountID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return account, nil
}
