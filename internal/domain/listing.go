package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a business directory entry submitted by an account.
type Listing struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	ListingContent
	ImageURL  *string
	ImageKey  *string
	Status    ListingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListingContent holds the fields an owner may edit.
type ListingContent struct {
	Name          string
	Category      string
	Description   string
	ContactPerson string
	Phone         string
	Email         string
	Location      string
}

// IsOwnedBy reports whether accountID owns the listing.
func (l *Listing) IsOwnedBy(accountID uuid.UUID) bool {
	return accountID != uuid.Nil && l.OwnerID == accountID
}

// ListingAction is an admin moderation action.
type ListingAction string

const (
	ListingActionApprove ListingAction = "approve"
	ListingActionReject  ListingAction = "reject"
	ListingActionRequeue ListingAction = "requeue"
)

func (a ListingAction) String() string { return string(a) }

// ParseListingAction returns ErrInvalidStatus for unknown actions.
func ParseListingAction(s string) (ListingAction, error) {
	a := ListingAction(s)
	switch a {
	case ListingActionApprove, ListingActionReject, ListingActionRequeue:
		return a, nil
	}
	return "", ErrInvalidStatus
}

// Target returns the status the action moves a listing into.
func (a ListingAction) Target() ListingStatus {
	switch a {
	case ListingActionApprove:
		return ListingStatusApproved
	case ListingActionReject:
		return ListingStatusRejected
	default:
		return ListingStatusPending
	}
}

// AuditAction returns the audit label for the moderation action.
func (a ListingAction) AuditAction() AuditAction {
	switch a {
	case ListingActionApprove:
		return AuditActionApprove
	case ListingActionReject:
		return AuditActionReject
	default:
		return AuditActionRequeue
	}
}

// transitions lists every allowed from -> to move. Delete is handled
// separately because it removes the entity.
var transitions = map[ListingStatus][]ListingStatus{
	ListingStatusPending:  {ListingStatusApproved, ListingStatusRejected},
	ListingStatusApproved: {ListingStatusRejected, ListingStatusPending},
	ListingStatusRejected: {ListingStatusApproved, ListingStatusPending},
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Staying in the same state is not a transition.
func (s ListingStatus) CanTransitionTo(next ListingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatus applies a moderation action to the current status.
// changed is false when the listing is already in the target state.
// Returns ErrInvalidStatus for unknown states and ErrConflict for moves
// outside the transition table.
func NextStatus(current ListingStatus, action ListingAction) (next ListingStatus, changed bool, err error) {
	if !current.IsValid() {
		return "", false, ErrInvalidStatus
	}
	if _, err := ParseListingAction(string(action)); err != nil {
		return "", false, err
	}

	target := action.Target()
	if target == current {
		return current, false, nil
	}
	if !current.CanTransitionTo(target) {
		return "", false, ErrConflict
	}
	return target, true, nil
}

// ListingScope is the visibility restriction applied to listing queries.
// A zero value means unrestricted.
type ListingScope struct {
	// Statuses restricts rows to these statuses. Empty means any.
	Statuses []ListingStatus
	// OrOwnerID additionally admits rows owned by this account regardless
	// of status.
	OrOwnerID *uuid.UUID
}

// IsUnrestricted reports whether the scope admits every listing.
func (s ListingScope) IsUnrestricted() bool {
	return len(s.Statuses) == 0 && s.OrOwnerID == nil
}

// ListingFilter describes a listing query.
type ListingFilter struct {
	Scope ListingScope

	// OwnerID restricts to a single owner (own listings view).
	OwnerID *uuid.UUID
	// Status is an exact status filter applied inside the scope.
	Status *ListingStatus
	// Search is a case-insensitive substring match on name.
	Search string
	// Location is a case-insensitive substring match on location.
	Location string
	// Category is an exact category match.
	Category string

	// SortBy is "name" or "created_at" (default, newest first).
	SortBy string
	Limit  int
	Offset int
}
