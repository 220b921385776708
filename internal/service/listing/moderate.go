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

// Moderate applies an admin action (approve, reject, requeue) to a listing.
// Moving into the current state returns the listing unchanged and is not
// audited. Moves outside the transition table yield ErrConflict.
// A listing removed before the row lock is taken (a racing delete) yields
// (nil, nil): nothing is changed, audited or published.
func (s *Service) Moderate(ctx context.Context, id uuid.UUID, action string) (*domain.Listing, error) {
	caller := access.CallerFromCtx(ctx)
	if err := access.Authorize(caller, access.OpListingTransition, access.Resource{}).Err(); err != nil {
		return nil, err
	}

	act, err := domain.ParseListingAction(action)
	if err != nil {
		return nil, err
	}

	var (
		result  *domain.Listing
		from    domain.ListingStatus
		changed bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		from = current.Status

		next, ok, err := domain.NextStatus(current.Status, act)
		if err != nil {
			return err
		}
		if !ok {
			result = current
			return nil
		}

		result, err = s.repo.SetStatus(txCtx, id, next)
		if err != nil {
			return err
		}
		changed = true
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		s.log.DebugContext(ctx, "listing gone before moderation",
			slog.String("listing_id", id.String()),
			slog.String("action", string(act)))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing.Moderate: %w", err)
	}

	if !changed {
		return result, nil
	}

	s.audit.Record(ctx, caller.AccountID, act.AuditAction(), domain.TargetTypeListing, &id)
	s.metrics.Transition(string(from), string(result.Status))

	s.log.InfoContext(ctx, "listing moderated",
		slog.String("listing_id", id.String()),
		slog.String("admin_id", caller.AccountID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(result.Status)))
	s.publish(ctx, domain.EventListingStatusChanged, result, caller.AccountID)

	return result, nil
}
