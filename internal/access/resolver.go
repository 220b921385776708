package access

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

type tokenVerifier interface {
	VerifyAccessToken(token string) (uuid.UUID, error)
}

type roleLookup interface {
	GetRole(ctx context.Context, accountID uuid.UUID) (domain.UserRole, error)
}

// Resolver turns a session credential into a Caller.
type Resolver struct {
	tokens tokenVerifier
	roles  roleLookup
}

// NewResolver creates a Resolver.
func NewResolver(tokens tokenVerifier, roles roleLookup) *Resolver {
	return &Resolver{tokens: tokens, roles: roles}
}

// Resolve returns the caller for the given bearer token.
//
// An empty token resolves to the anonymous caller. A token that fails
// verification yields ErrUnauthorized. When the role cannot be read the
// caller is returned as a member together with ErrRoleLookupFailed; the
// caller is still usable but never admin.
func (r *Resolver) Resolve(ctx context.Context, token string) (Caller, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Anonymous(), nil
	}

	accountID, err := r.tokens.VerifyAccessToken(token)
	if err != nil {
		return Anonymous(), fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	member := Caller{AccountID: accountID, Role: RoleMember}

	role, err := r.roles.GetRole(ctx, accountID)
	if err != nil {
		return member, fmt.Errorf("%w: %w", domain.ErrRoleLookupFailed, err)
	}
	if role.IsAdmin() {
		return Caller{AccountID: accountID, Role: RoleAdmin}, nil
	}
	return member, nil
}
