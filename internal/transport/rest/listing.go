package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
	"github.com/heartmarshall/localbiz-backend/internal/service/listing"
)

// multipartOverhead is the allowance for form boundaries and headers on top
// of the image itself.
const multipartOverhead = 64 << 10

type listingService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	ListPublic(ctx context.Context, input listing.ListInput) (*listing.ListResult, error)
	ListMine(ctx context.Context, input listing.ListInput) (*listing.ListResult, error)
	ListForModeration(ctx context.Context, input listing.ListInput) (*listing.ListResult, error)
	Create(ctx context.Context, input listing.CreateInput) (*domain.Listing, error)
	Update(ctx context.Context, id uuid.UUID, input listing.UpdateInput) (*domain.Listing, error)
	Moderate(ctx context.Context, id uuid.UUID, action string) (*domain.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) (*listing.DeleteResult, error)
	SetImage(ctx context.Context, id uuid.UUID, input listing.ImageInput) (*domain.Listing, error)
}

// ListingHandler serves the directory and listing management endpoints.
type ListingHandler struct {
	svc           listingService
	log           *slog.Logger
	maxImageBytes int64
}

// NewListingHandler creates a ListingHandler. maxImageBytes bounds the
// multipart upload body; the service enforces the exact limit.
func NewListingHandler(svc listingService, maxImageBytes int64, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		svc:           svc,
		log:           logger.With("handler", "listing"),
		maxImageBytes: maxImageBytes,
	}
}

type deleteResponse struct {
	Deleted bool   `json:"deleted"`
	Warning string `json:"warning,omitempty"`
}

// Browse handles GET /listings?q=&location=&category=&limit=&offset=.
func (h *ListingHandler) Browse(w http.ResponseWriter, r *http.Request) {
	input, err := listInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ListPublic(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingPage(res))
}

// Mine handles GET /me/listings.
func (h *ListingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	input, err := listInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ListMine(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingPage(res))
}

// Moderation handles GET /admin/listings?status=pending.
func (h *ListingHandler) Moderation(w http.ResponseWriter, r *http.Request) {
	input, err := listInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input.Status = r.URL.Query().Get("status")

	res, err := h.svc.ListForModeration(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingPage(res))
}

// Get handles GET /listings/{id}.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(l))
}

// Create handles POST /listings. Any status in the body is ignored.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req listing.CreateInput
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.svc.Create(r.Context(), req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListingResponse(l))
}

// Update handles PUT /listings/{id}.
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req listing.UpdateInput
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(l))
}

// Moderate handles POST /admin/listings/{id}/{action}. A listing deleted
// while the action was in flight is a 204.
func (h *ListingHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := h.svc.Moderate(r.Context(), id, r.PathValue("action"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if l == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(l))
}

// Delete handles DELETE /listings/{id}. Deleting a missing listing is a 204.
// When the row is gone but its image is not, the response is a 200 carrying
// a warning.
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if res.ImageErr != nil {
		writeJSON(w, http.StatusOK, deleteResponse{
			Deleted: true,
			Warning: "listing deleted but its image could not be removed",
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetImage handles PUT /listings/{id}/image with a multipart "image" field.
func (h *ListingHandler) SetImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageBytes+multipartOverhead)
	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "image too large")
		case errors.Is(err, http.ErrMissingFile):
			handleError(w, r, h.log, domain.NewValidationError("image", "required"))
		default:
			writeError(w, http.StatusBadRequest, "invalid multipart body")
		}
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	l, err := h.svc.SetImage(r.Context(), id, listing.ImageInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(l))
}

func listInput(r *http.Request) (listing.ListInput, error) {
	limit, offset, err := pagination(r)
	if err != nil {
		return listing.ListInput{}, err
	}
	q := r.URL.Query()
	return listing.ListInput{
		Query:    q.Get("q"),
		Location: q.Get("location"),
		Category: q.Get("category"),
		Limit:    limit,
		Offset:   offset,
	}, nil
}
