package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// SetRole changes the role of an account (admin only). Admins cannot demote
// themselves. Assigning the role an account already has returns it unchanged
// and is not audited.
func (s *Service) SetRole(ctx context.Context, targetID uuid.UUID, roleName string) (*domain.Account, error) {
	caller := access.CallerFromCtx(ctx)
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	role, err := parseRole(roleName)
	if err != nil {
		return nil, err
	}

	res := access.Resource{AccountID: targetID, NewRole: role}
	if err := access.Authorize(caller, access.OpRoleChange, res).Err(); err != nil {
		return nil, err
	}

	current, err := s.accounts.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}
	if current.Role == role {
		return current, nil
	}

	updated, err := s.accounts.SetRole(ctx, targetID, role)
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}

	s.audit.Record(ctx, caller.AccountID, domain.AuditActionRoleChange, domain.TargetTypeAccount, &targetID)

	s.log.InfoContext(ctx, "account role updated",
		slog.String("target_account_id", targetID.String()),
		slog.String("old_role", current.Role.String()),
		slog.String("new_role", role.String()),
	)

	actor := caller.AccountID
	s.events.Publish(ctx, domain.Event{
		Type:     domain.EventAccountRoleChanged,
		TargetID: targetID,
		ActorID:  &actor,
		Role:     role.String(),
	})

	return updated, nil
}

// ListAccounts returns a page of accounts, optionally filtered by email
// (admin only).
func (s *Service) ListAccounts(ctx context.Context, input ListAccountsInput) (*AccountList, error) {
	caller := access.CallerFromCtx(ctx)
	if err := access.Authorize(caller, access.OpAccountList, access.Resource{}).Err(); err != nil {
		return nil, err
	}

	f := input.filter()
	accounts, total, err := s.accounts.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("user.ListAccounts: %w", err)
	}

	return &AccountList{Accounts: accounts, Total: total, Limit: f.Limit, Offset: f.Offset}, nil
}
