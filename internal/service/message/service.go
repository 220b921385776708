// Package message implements the public contact form and the admin inbox.
package message

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	List(ctx context.Context, f domain.MessageFilter) ([]domain.Message, int, error)
	SetRead(ctx context.Context, id uuid.UUID, read bool) (*domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	CountUnread(ctx context.Context) (int, error)
}

type auditRecorder interface {
	Record(ctx context.Context, adminID uuid.UUID, action domain.AuditAction, target domain.TargetType, targetID *uuid.UUID)
}

type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event)
}

// Service provides contact message operations.
type Service struct {
	messages messageRepo
	audit    auditRecorder
	events   eventPublisher
	log      *slog.Logger
}

// NewService creates a new message service.
func NewService(
	log *slog.Logger,
	messages messageRepo,
	audit auditRecorder,
	events eventPublisher,
) *Service {
	return &Service{
		messages: messages,
		audit:    audit,
		events:   events,
		log:      log.With("service", "message"),
	}
}

// publish emits a message event carrying the current unread count. A failed
// count is logged and the event goes out without it.
func (s *Service) publish(ctx context.Context, typ domain.EventType, id uuid.UUID, actor *uuid.UUID) {
	e := domain.Event{Type: typ, TargetID: id, ActorID: actor}

	unread, err := s.messages.CountUnread(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "unread count unavailable",
			slog.String("message_id", id.String()),
			slog.String("error", err.Error()))
	} else {
		e.UnreadCount = &unread
	}

	s.events.Publish(ctx, e)
}
