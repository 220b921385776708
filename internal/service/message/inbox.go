package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// admin returns the caller if it may operate on the inbox.
func admin(ctx context.Context, op access.Operation) (access.Caller, error) {
	caller := access.CallerFromCtx(ctx)
	if err := access.Authorize(caller, op, access.Resource{}).Err(); err != nil {
		return caller, err
	}
	return caller, nil
}

// List returns a page of messages, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if _, err := admin(ctx, access.OpMessageRead); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	msgs, total, err := s.messages.List(ctx, domain.MessageFilter{
		UnreadOnly: input.UnreadOnly,
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("message.List: %w", err)
	}

	return &ListResult{Messages: msgs, Total: total, Limit: limit, Offset: input.Offset}, nil
}

// Get returns a single message. Viewing an unread message marks it read.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	caller, err := admin(ctx, access.OpMessageRead)
	if err != nil {
		return nil, err
	}

	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("message.Get: %w", err)
	}
	if msg.IsRead {
		return msg, nil
	}

	msg, err = s.messages.SetRead(ctx, id, true)
	if err != nil {
		return nil, fmt.Errorf("message.Get mark read: %w", err)
	}
	s.publish(ctx, domain.EventMessageRead, id, &caller.AccountID)

	return msg, nil
}

// MarkRead sets the read flag of a message.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID, read bool) (*domain.Message, error) {
	caller, err := admin(ctx, access.OpMessageWrite)
	if err != nil {
		return nil, err
	}

	msg, err := s.messages.SetRead(ctx, id, read)
	if err != nil {
		return nil, fmt.Errorf("message.MarkRead: %w", err)
	}

	s.log.InfoContext(ctx, "message read flag set",
		slog.String("message_id", id.String()),
		slog.Bool("read", read),
	)
	s.publish(ctx, domain.EventMessageRead, id, &caller.AccountID)

	return msg, nil
}

// Delete removes a message. Deleting a missing message is a no-op; only an
// actual removal is audited. Reports whether a row was removed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	caller, err := admin(ctx, access.OpMessageWrite)
	if err != nil {
		return false, err
	}

	deleted, err := s.messages.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("message.Delete: %w", err)
	}
	if !deleted {
		return false, nil
	}

	s.audit.Record(ctx, caller.AccountID, domain.AuditActionDelete, domain.TargetTypeMessage, &id)

	s.log.InfoContext(ctx, "message deleted",
		slog.String("message_id", id.String()),
		slog.String("admin_id", caller.AccountID.String()),
	)
	s.publish(ctx, domain.EventMessageDeleted, id, &caller.AccountID)

	return true, nil
}

// UnreadCount returns the number of unread messages.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	if _, err := admin(ctx, access.OpMessageRead); err != nil {
		return 0, err
	}

	n, err := s.messages.CountUnread(ctx)
	if err != nil {
		return 0, fmt.Errorf("message.UnreadCount: %w", err)
	}
	return n, nil
}
