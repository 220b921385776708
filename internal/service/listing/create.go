package listing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// Create submits a new listing owned by the caller. It always starts pending.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Listing, error) {
	caller := access.CallerFromCtx(ctx)
	if err := access.Authorize(caller, access.OpListingCreate, access.Resource{}).Err(); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Listing{
		OwnerID:        caller.AccountID,
		ListingContent: input.toDomain(),
		Status:         domain.ListingStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("listing.Create: %w", err)
	}

	s.log.InfoContext(ctx, "listing submitted",
		slog.String("listing_id", created.ID.String()),
		slog.String("owner_id", created.OwnerID.String()))
	s.publish(ctx, domain.EventListingSubmitted, created, caller.AccountID)

	return created, nil
}
