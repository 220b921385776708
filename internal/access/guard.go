package access

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// Operation names an action a caller asks to perform.
type Operation string

const (
	OpListingCreate     Operation = "listing.create"
	OpListingRead       Operation = "listing.read"
	OpListingUpdate     Operation = "listing.update"
	OpListingTransition Operation = "listing.transition"
	OpListingDelete     Operation = "listing.delete"
	OpListingModerate   Operation = "listing.moderate" // moderation queue read

	OpRoleChange   Operation = "account.role_change"
	OpAccountList  Operation = "account.list"
	OpProfileRead  Operation = "account.profile"
	OpMessageSend  Operation = "message.create"
	OpMessageRead  Operation = "message.read"
	OpMessageWrite Operation = "message.write" // mark-read and delete
	OpAuditRead    Operation = "audit.read"
)

// Resource describes the object an operation targets. Only the fields the
// operation needs are consulted.
type Resource struct {
	OwnerID uuid.UUID
	Status  domain.ListingStatus
	// AccountID is the account whose role is being changed.
	AccountID uuid.UUID
	// NewRole is the role being assigned on OpRoleChange.
	NewRole domain.UserRole
}

// ListingResource builds a Resource for a stored listing.
func ListingResource(l *domain.Listing) Resource {
	return Resource{OwnerID: l.OwnerID, Status: l.Status}
}

// Decision is the outcome of Authorize. The zero value denies.
type Decision struct {
	allowed bool
	reason  error
}

// Allow is the permitting decision.
func Allow() Decision { return Decision{allowed: true} }

// Deny returns a denying decision carrying a domain sentinel as reason.
func Deny(reason error) Decision { return Decision{reason: reason} }

// Allowed reports whether the operation may proceed.
func (d Decision) Allowed() bool { return d.allowed }

// Err returns nil when allowed and the deny reason otherwise.
func (d Decision) Err() error {
	if d.allowed {
		return nil
	}
	if d.reason == nil {
		return domain.ErrForbidden
	}
	return d.reason
}

// Authorize decides whether caller may perform op on res.
func Authorize(caller Caller, op Operation, res Resource) Decision {
	switch op {
	case OpListingCreate, OpProfileRead:
		return requireAuth(caller)

	case OpListingRead:
		if CanView(caller, res.OwnerID, res.Status) {
			return Allow()
		}
		// Hidden listings are reported as absent.
		return Deny(domain.ErrNotFound)

	case OpListingUpdate, OpListingDelete:
		if !caller.IsAuthenticated() {
			return Deny(domain.ErrUnauthorized)
		}
		if caller.IsAdmin() || caller.Owns(res.OwnerID) {
			return Allow()
		}
		return Deny(domain.ErrForbidden)

	case OpRoleChange:
		if d := requireAdmin(caller); !d.Allowed() {
			return d
		}
		if res.AccountID == caller.AccountID && !res.NewRole.IsAdmin() {
			return Deny(domain.NewValidationError("role", "cannot demote yourself"))
		}
		return Allow()

	case OpMessageSend:
		return Allow()

	case OpListingTransition, OpListingModerate, OpAccountList,
		OpMessageRead, OpMessageWrite, OpAuditRead:
		return requireAdmin(caller)
	}

	return Deny(domain.ErrForbidden)
}

func requireAuth(caller Caller) Decision {
	if !caller.IsAuthenticated() {
		return Deny(domain.ErrUnauthorized)
	}
	return Allow()
}

func requireAdmin(caller Caller) Decision {
	if !caller.IsAuthenticated() {
		return Deny(domain.ErrUnauthorized)
	}
	if !caller.IsAdmin() {
		return Deny(domain.ErrForbidden)
	}
	return Allow()
}
