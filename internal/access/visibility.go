package access

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// Scope returns the listing visibility restriction for the caller.
// Anonymous callers see approved listings, members additionally see their
// own, admins see everything.
func Scope(caller Caller) domain.ListingScope {
	switch {
	case caller.IsAdmin():
		return domain.ListingScope{}
	case caller.IsAuthenticated():
		id := caller.AccountID
		return domain.ListingScope{
			Statuses:  []domain.ListingStatus{domain.ListingStatusApproved},
			OrOwnerID: &id,
		}
	default:
		return PublicScope()
	}
}

// PublicScope is the directory browse scope. It ignores who is asking.
func PublicScope() domain.ListingScope {
	return domain.ListingScope{
		Statuses: []domain.ListingStatus{domain.ListingStatusApproved},
	}
}

// CanView reports whether the caller may see a listing with the given
// owner and status.
func CanView(caller Caller, ownerID uuid.UUID, status domain.ListingStatus) bool {
	if status == domain.ListingStatusApproved {
		return true
	}
	return caller.IsAdmin() || caller.Owns(ownerID)
}

// Filter returns the listings that satisfy scope, preserving order.
func Filter(scope domain.ListingScope, listings []domain.Listing) []domain.Listing {
	if scope.IsUnrestricted() {
		return listings
	}
	out := make([]domain.Listing, 0, len(listings))
	for i := range listings {
		if Matches(scope, &listings[i]) {
			out = append(out, listings[i])
		}
	}
	return out
}

// Matches reports whether a listing satisfies a scope. It mirrors the SQL
// predicate built by the listing repository.
func Matches(scope domain.ListingScope, l *domain.Listing) bool {
	if scope.IsUnrestricted() {
		return true
	}
	if scope.OrOwnerID != nil && l.OwnerID == *scope.OrOwnerID {
		return true
	}
	for _, s := range scope.Statuses {
		if l.Status == s {
			return true
		}
	}
	return false
}
