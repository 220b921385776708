package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogEntry is an immutable record of an administrative mutation.
type AuditLogEntry struct {
	ID         uuid.UUID
	AdminID    uuid.UUID
	Action     AuditAction
	TargetType TargetType
	TargetID   *uuid.UUID
	CreatedAt  time.Time

	// AdminEmail is populated on reads only.
	AdminEmail string
}
