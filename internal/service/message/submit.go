package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// Submit stores a contact form message. Anyone may submit.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Message, error) {
	caller := access.CallerFromCtx(ctx)
	if err := access.Authorize(caller, access.OpMessageSend, access.Resource{}).Err(); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	msg, err := s.messages.Create(ctx, &domain.Message{
		Name:  input.Name,
		Email: input.Email,
		Body:  input.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("message.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "contact message received",
		slog.String("message_id", msg.ID.String()),
		slog.Int("length", len(msg.Body)),
	)
	s.publish(ctx, domain.EventMessageReceived, msg.ID, nil)

	return msg, nil
}
