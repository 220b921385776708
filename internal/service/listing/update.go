package listing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// Update overwrites the content fields of a listing. Owner or admin only.
// The status is never touched, so an approved listing stays approved.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Listing, error) {
	caller := access.CallerFromCtx(ctx)
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id, domain.ListingScope{})
	if err != nil {
		return nil, fmt.Errorf("listing.Update: %w", err)
	}
	if err := access.Authorize(caller, access.OpListingUpdate, access.ListingResource(current)).Err(); err != nil {
		return nil, fmt.Errorf("listing.Update: %w", err)
	}

	updated, err := s.repo.UpdateContent(ctx, id, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("listing.Update: %w", err)
	}

	s.log.InfoContext(ctx, "listing updated",
		slog.String("listing_id", id.String()),
		slog.String("actor_id", caller.AccountID.String()))
	s.publish(ctx, domain.EventListingUpdated, updated, caller.AccountID)

	return updated, nil
}
