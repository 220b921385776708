package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact form submission addressed to the administrators.
type Message struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Body      string
	IsRead    bool
	CreatedAt time.Time
}

// MessageFilter describes an admin inbox query.
type MessageFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}
