// Package access resolves who is calling and decides what they may do.
//
// A request is resolved once into a Caller by the auth middleware. Services
// read the Caller back from the context and ask Authorize before touching
// the store; listing queries are narrowed with Scope.
package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/pkg/ctxutil"
)

// Role is the resolved capability level of a caller.
type Role string

const (
	RoleAnonymous Role = ctxutil.RoleAnonymous
	RoleMember    Role = ctxutil.RoleMember
	RoleAdmin     Role = ctxutil.RoleAdmin
)

func (r Role) String() string { return string(r) }

// Caller is the identity a request acts as.
type Caller struct {
	AccountID uuid.UUID
	Role      Role
}

// Anonymous returns the caller used when no session was presented.
func Anonymous() Caller {
	return Caller{Role: RoleAnonymous}
}

// IsAuthenticated reports whether the caller has a session.
func (c Caller) IsAuthenticated() bool {
	return c.Role != RoleAnonymous && c.AccountID != uuid.Nil
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.IsAuthenticated() && c.Role == RoleAdmin
}

// Owns reports whether the caller is the given owner.
func (c Caller) Owns(ownerID uuid.UUID) bool {
	return c.IsAuthenticated() && c.AccountID == ownerID
}

// WithCaller stores the caller in the context.
func WithCaller(ctx context.Context, c Caller) context.Context {
	if c.AccountID != uuid.Nil {
		ctx = ctxutil.WithUserID(ctx, c.AccountID)
	}
	return ctxutil.WithRole(ctx, string(c.Role))
}

// CallerFromCtx returns the caller stored in the context. A context with no
// account ID is always anonymous, whatever role string it carries.
func CallerFromCtx(ctx context.Context) Caller {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Anonymous()
	}
	switch Role(ctxutil.RoleFromCtx(ctx)) {
	case RoleAdmin:
		return Caller{AccountID: id, Role: RoleAdmin}
	default:
		return Caller{AccountID: id, Role: RoleMember}
	}
}
