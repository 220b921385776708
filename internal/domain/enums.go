package domain

// UserRole represents the authorization level stored on an account.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ListingStatus is the moderation state of a listing.
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
	ListingStatusRejected ListingStatus = "rejected"
)

func (s ListingStatus) String() string { return string(s) }

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusPending, ListingStatusApproved, ListingStatusRejected:
		return true
	}
	return false
}

// ParseListingStatus returns ErrInvalidStatus for anything outside the
// three persisted states.
func ParseListingStatus(s string) (ListingStatus, error) {
	status := ListingStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// TargetType identifies the kind of entity an audit entry refers to.
type TargetType string

const (
	TargetTypeListing TargetType = "listing"
	TargetTypeAccount TargetType = "account"
	TargetTypeMessage TargetType = "message"
)

func (t TargetType) String() string { return string(t) }

func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeListing, TargetTypeAccount, TargetTypeMessage:
		return true
	}
	return false
}

// AuditAction is the label recorded for an administrative mutation.
type AuditAction string

const (
	AuditActionApprove    AuditAction = "approve"
	AuditActionReject     AuditAction = "reject"
	AuditActionRequeue    AuditAction = "requeue"
	AuditActionDelete     AuditAction = "delete"
	AuditActionRoleChange AuditAction = "role_change"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionApprove, AuditActionReject, AuditActionRequeue,
		AuditActionDelete, AuditActionRoleChange:
		return true
	}
	return false
}
