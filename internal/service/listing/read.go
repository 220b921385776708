package listing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// Get returns a listing visible to the caller. Hidden listings yield ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	caller := access.CallerFromCtx(ctx)

	l, err := s.repo.GetByID(ctx, id, access.Scope(caller))
	if err != nil {
		return nil, fmt.Errorf("listing.Get: %w", err)
	}
	if err := access.Authorize(caller, access.OpListingRead, access.ListingResource(l)).Err(); err != nil {
		return nil, fmt.Errorf("listing.Get: %w", err)
	}
	return l, nil
}

// ListPublic is the directory browse: approved listings only, ordered by name,
// whoever is asking.
func (s *Service) ListPublic(ctx context.Context, input ListInput) (*ListResult, error) {
	limit, offset := s.page(input.Limit, input.Offset)

	return s.list(ctx, "listing.ListPublic", access.PublicScope(), domain.ListingFilter{
		Scope:    access.PublicScope(),
		Search:   input.Query,
		Location: input.Location,
		Category: input.Category,
		SortBy:   "name",
		Limit:    limit,
		Offset:   offset,
	})
}

// ListMine returns the caller's own listings in every status, newest first.
func (s *Service) ListMine(ctx context.Context, input ListInput) (*ListResult, error) {
	caller := access.CallerFromCtx(ctx)
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	limit, offset := s.page(input.Limit, input.Offset)
	owner := caller.AccountID

	return s.list(ctx, "listing.ListMine", access.Scope(caller), domain.ListingFilter{
		OwnerID:  &owner,
		Search:   input.Query,
		Category: input.Category,
		Limit:    limit,
		Offset:   offset,
	})
}

// ListForModeration returns every listing, optionally narrowed to a status,
// newest first. Admin only.
func (s *Service) ListForModeration(ctx context.Context, input ListInput) (*ListResult, error) {
	caller := access.CallerFromCtx(ctx)
	if err := access.Authorize(caller, access.OpListingModerate, access.Resource{}).Err(); err != nil {
		return nil, err
	}

	f := domain.ListingFilter{
		Search:   input.Query,
		Location: input.Location,
		Category: input.Category,
	}
	if input.Status != "" {
		status, err := domain.ParseListingStatus(input.Status)
		if err != nil {
			return nil, err
		}
		f.Status = &status
	}
	f.Limit, f.Offset = s.page(input.Limit, input.Offset)

	return s.list(ctx, "listing.ListForModeration", access.Scope(caller), f)
}

// list runs the query and drops any row outside visible. The store applies
// the same restriction; a dropped row means the two disagree.
func (s *Service) list(ctx context.Context, op string, visible domain.ListingScope, f domain.ListingFilter) (*ListResult, error) {
	listings, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	kept := access.Filter(visible, listings)
	if dropped := len(listings) - len(kept); dropped > 0 {
		s.log.ErrorContext(ctx, "store returned listings outside the caller scope",
			slog.String("op", op),
			slog.Int("dropped", dropped))
		total -= dropped
	}
	return &ListResult{Listings: kept, Total: total, Limit: f.Limit, Offset: f.Offset}, nil
}
