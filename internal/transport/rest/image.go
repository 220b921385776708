package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/localbiz-backend/internal/adapter/blobstore"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

type objectReader interface {
	Open(ctx context.Context, key string) (*blobstore.Object, error)
}

// ImageHandler serves stored listing images for buckets that are not
// publicly reachable (mem://, file://).
type ImageHandler struct {
	store objectReader
	log   *slog.Logger
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(store objectReader, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{store: store, log: logger.With("handler", "image")}
}

// Serve handles GET /images/{key...}.
func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	obj, err := h.store.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		handleError(w, r, h.log, err)
		return
	}
	defer obj.Close()

	if obj.ContentType != "" {
		w.Header().Set("Content-Type", obj.ContentType)
	}
	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, obj); err != nil {
		h.log.WarnContext(r.Context(), "image copy interrupted",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}
