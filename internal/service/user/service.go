// Package user implements account operations: the caller's own profile and
// the admin account directory with role management.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// accountRepo defines the account repository interface needed by user service.
type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	List(ctx context.Context, f domain.AccountFilter) ([]domain.Account, int, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.Account, error)
}

// auditRecorder records admin mutations.
type auditRecorder interface {
	Record(ctx context.Context, adminID uuid.UUID, action domain.AuditAction, target domain.TargetType, targetID *uuid.UUID)
}

// eventPublisher broadcasts change events.
type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event)
}

// Service implements profile and account administration operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	audit    auditRecorder
	events   eventPublisher
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	audit auditRecorder,
	events eventPublisher,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		accounts: accounts,
		audit:    audit,
		events:   events,
	}
}
