package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a change broadcast on the notification bus.
type EventType string

const (
	EventListingSubmitted     EventType = "listing.submitted"
	EventListingUpdated       EventType = "listing.updated"
	EventListingStatusChanged EventType = "listing.status_changed"
	EventListingDeleted       EventType = "listing.deleted"
	EventMessageReceived      EventType = "message.received"
	EventMessageRead          EventType = "message.read"
	EventMessageDeleted       EventType = "message.deleted"
	EventAccountRoleChanged   EventType = "account.role_changed"
)

// IsMessageEvent reports whether the event affects the admin inbox.
func (t EventType) IsMessageEvent() bool {
	switch t {
	case EventMessageReceived, EventMessageRead, EventMessageDeleted:
		return true
	}
	return false
}

// Event is a change notification. Fields that do not apply to the event
// type are left zero.
type Event struct {
	Type        EventType  `json:"type"`
	TargetID    uuid.UUID  `json:"target_id"`
	ActorID     *uuid.UUID `json:"actor_id,omitempty"`
	Status      string     `json:"status,omitempty"`
	Role        string     `json:"role,omitempty"`
	UnreadCount *int       `json:"unread_count,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}
