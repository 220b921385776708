package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// auditReader reads the audit trail.
type auditReader interface {
	List(ctx context.Context, limit, offset int) ([]domain.AuditLogEntry, int, error)
}

// ListResult is one page of the audit trail.
type ListResult struct {
	Entries []domain.AuditLogEntry
	Total   int
}

// Service exposes the audit trail to administrators.
type Service struct {
	log  *slog.Logger
	repo auditReader
}

// NewService creates a new audit read service.
func NewService(logger *slog.Logger, repo auditReader) *Service {
	return &Service{
		log:  logger.With("service", "audit"),
		repo: repo,
	}
}

// List returns entries newest first. Admin only.
func (s *Service) List(ctx context.Context, limit, offset int) (*ListResult, error) {
	caller := access.CallerFromCtx(ctx)
	if err := access.Authorize(caller, access.OpAuditRead, access.Resource{}).Err(); err != nil {
		return nil, err
	}

	entries, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("audit.List: %w", err)
	}
	return &ListResult{Entries: entries, Total: total}, nil
}
