package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// Delete removes a listing. Owner or admin only. A missing listing is a
// successful no-op. The row goes first; the stored image is removed
// afterwards and a failure there is reported in DeleteResult.ImageErr.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	caller := access.CallerFromCtx(ctx)
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.repo.GetByID(ctx, id, domain.ListingScope{})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &DeleteResult{}, nil
		}
		return nil, fmt.Errorf("listing.Delete: %w", err)
	}
	if err := access.Authorize(caller, access.OpListingDelete, access.ListingResource(current)).Err(); err != nil {
		return nil, fmt.Errorf("listing.Delete: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Lost a race with another delete.
			return &DeleteResult{}, nil
		}
		return nil, fmt.Errorf("listing.Delete: %w", err)
	}

	res := &DeleteResult{Deleted: true}
	if deleted.ImageKey != nil {
		if err := s.images.Delete(ctx, *deleted.ImageKey); err != nil {
			res.ImageErr = err
			s.log.WarnContext(ctx, "listing image not removed",
				slog.String("listing_id", id.String()),
				slog.String("image_key", *deleted.ImageKey),
				slog.String("error", err.Error()))
		}
	}

	if caller.IsAdmin() {
		s.audit.Record(ctx, caller.AccountID, domain.AuditActionDelete, domain.TargetTypeListing, &id)
	}

	s.log.InfoContext(ctx, "listing deleted",
		slog.String("listing_id", id.String()),
		slog.String("actor_id", caller.AccountID.String()))
	s.publish(ctx, domain.EventListingDeleted, deleted, caller.AccountID)

	return res, nil
}
