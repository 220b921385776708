package listing

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// SetImage stores a new image for the listing and replaces the previous one.
// Owner or admin only.
func (s *Service) SetImage(ctx context.Context, id uuid.UUID, input ImageInput) (*domain.Listing, error) {
	caller := access.CallerFromCtx(ctx)
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	contentType, err := s.checkImage(input)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id, domain.ListingScope{})
	if err != nil {
		return nil, fmt.Errorf("listing.SetImage: %w", err)
	}
	if err := access.Authorize(caller, access.OpListingUpdate, access.ListingResource(current)).Err(); err != nil {
		return nil, fmt.Errorf("listing.SetImage: %w", err)
	}

	key := s.imageKey(current, contentType)
	url, err := s.images.Upload(ctx, key, contentType, input.Data)
	if err != nil {
		return nil, fmt.Errorf("listing.SetImage upload: %w", err)
	}

	updated, err := s.repo.SetImage(ctx, id, url, key)
	if err != nil {
		s.removeImage(ctx, id, key)
		return nil, fmt.Errorf("listing.SetImage: %w", err)
	}

	if current.ImageKey != nil && *current.ImageKey != key {
		s.removeImage(ctx, id, *current.ImageKey)
	}

	s.log.InfoContext(ctx, "listing image replaced",
		slog.String("listing_id", id.String()),
		slog.String("filename", input.Filename),
		slog.Int("bytes", len(input.Data)))
	s.publish(ctx, domain.EventListingUpdated, updated, caller.AccountID)

	return updated, nil
}

// checkImage validates size and type. The type is sniffed from the bytes;
// the declared type is only used when sniffing is inconclusive.
func (s *Service) checkImage(input ImageInput) (string, error) {
	if len(input.Data) == 0 {
		return "", domain.NewValidationError("image", "required")
	}
	if s.storage.MaxImageBytes > 0 && int64(len(input.Data)) > s.storage.MaxImageBytes {
		return "", domain.NewValidationError("image", fmt.Sprintf("must be at most %d bytes", s.storage.MaxImageBytes))
	}

	contentType := http.DetectContentType(input.Data)
	if contentType == "application/octet-stream" && input.ContentType != "" {
		contentType = input.ContentType
	}
	contentType, _, _ = strings.Cut(contentType, ";")

	if !slices.Contains(s.storage.AllowedContentTypes(), contentType) {
		return "", domain.NewValidationError("image", "unsupported type "+contentType)
	}
	return contentType, nil
}

// imageKey returns <prefix>/<owner>/<listing>-<unix><ext>.
func (s *Service) imageKey(l *domain.Listing, contentType string) string {
	ext, ok := imageExtensions[contentType]
	if !ok {
		ext = ".bin"
	}
	key := fmt.Sprintf("%s/%s-%d%s", l.OwnerID, l.ID, s.now().Unix(), ext)
	if prefix := strings.Trim(s.storage.KeyPrefix, "/"); prefix != "" {
		key = prefix + "/" + key
	}
	return key
}

func (s *Service) removeImage(ctx context.Context, id uuid.UUID, key string) {
	if err := s.images.Delete(ctx, key); err != nil {
		s.log.WarnContext(ctx, "listing image not removed",
			slog.String("listing_id", id.String()),
			slog.String("image_key", key),
			slog.String("error", err.Error()))
	}
}
