// Package listing implements the listing lifecycle: submission, owner edits,
// moderation, deletion and images. Every operation resolves the caller from
// the context and asks access.Authorize before touching the store.
package listing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/config"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// listingRepo defines the listing repository interface needed by the service.
type listingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID, scope domain.ListingScope) (*domain.Listing, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	List(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, int, error)
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	UpdateContent(ctx context.Context, id uuid.UUID, c domain.ListingContent) (*domain.Listing, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus) (*domain.Listing, error)
	SetImage(ctx context.Context, id uuid.UUID, url, key string) (*domain.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
}

// imageStore defines the object store operations needed for listing images.
type imageStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// auditRecorder records admin mutations.
type auditRecorder interface {
	Record(ctx context.Context, adminID uuid.UUID, action domain.AuditAction, target domain.TargetType, targetID *uuid.UUID)
}

// eventPublisher broadcasts change events.
type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event)
}

// transitionMetrics counts applied status changes.
type transitionMetrics interface {
	Transition(from, to string)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements listing operations.
type Service struct {
	log     *slog.Logger
	repo    listingRepo
	images  imageStore
	audit   auditRecorder
	events  eventPublisher
	metrics transitionMetrics
	tx      txManager
	cfg     config.ListingConfig
	storage config.StorageConfig
	now     func() time.Time
}

// NewService creates a new listing service instance.
func NewService(
	logger *slog.Logger,
	repo listingRepo,
	images imageStore,
	audit auditRecorder,
	events eventPublisher,
	metrics transitionMetrics,
	tx txManager,
	cfg config.ListingConfig,
	storage config.StorageConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "listing"),
		repo:    repo,
		images:  images,
		audit:   audit,
		events:  events,
		metrics: metrics,
		tx:      tx,
		cfg:     cfg,
		storage: storage,
		now:     time.Now,
	}
}

func (s *Service) publish(ctx context.Context, typ domain.EventType, l *domain.Listing, actor uuid.UUID) {
	e := domain.Event{
		Type:     typ,
		TargetID: l.ID,
		Status:   string(l.Status),
	}
	if actor != uuid.Nil {
		e.ActorID = &actor
	}
	s.events.Publish(ctx, e)
}

// page applies the configured page size bounds.
func (s *Service) page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
