package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
	"github.com/heartmarshall/localbiz-backend/internal/notify"
	"github.com/heartmarshall/localbiz-backend/internal/service/message"
)

const streamHeartbeat = 25 * time.Second

type messageService interface {
	Submit(ctx context.Context, input message.SubmitInput) (*domain.Message, error)
	List(ctx context.Context, input message.ListInput) (*message.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID, read bool) (*domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	UnreadCount(ctx context.Context) (int, error)
}

type eventSubscriber interface {
	Subscribe(h notify.Handler) (unsubscribe func())
}

// MessageHandler serves the contact form and the admin inbox.
type MessageHandler struct {
	svc       messageService
	events    eventSubscriber
	log       *slog.Logger
	heartbeat time.Duration
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, events eventSubscriber, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		svc:       svc,
		events:    events,
		log:       logger.With("handler", "message"),
		heartbeat: streamHeartbeat,
	}
}

type markReadRequest struct {
	Read *bool `json:"read"`
}

// Submit handles POST /contact.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req message.SubmitInput
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": m.ID.String()})
}

// List handles GET /admin/messages?unread=true.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread"))

	res, err := h.svc.List(r.Context(), message.ListInput{
		UnreadOnly: unreadOnly,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMessagePage(res))
}

// Get handles GET /admin/messages/{id}. Viewing marks the message read.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMessageResponse(m))
}

// MarkRead handles POST /admin/messages/{id}/read. An empty body marks the
// message read; {"read": false} marks it unread again.
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	read := true
	if r.ContentLength != 0 {
		var req markReadRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Read != nil {
			read = *req.Read
		}
	}

	m, err := h.svc.MarkRead(r.Context(), id, read)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMessageResponse(m))
}

// Delete handles DELETE /admin/messages/{id}. Deleting a missing message is
// a 204 as well.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnreadCount handles GET /admin/messages/unread-count.
func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, unreadResponse{Unread: n})
}

// Stream handles GET /admin/messages/stream as server-sent events. The
// current unread count is sent on connect and again after every message
// event until the client goes away.
func (h *MessageHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Subscribe before reading the initial count so no event falls between
	// the two. Only the latest count matters, so a pending value is replaced.
	counts := make(chan int, 1)
	unsubscribe := h.events.Subscribe(func(_ context.Context, e domain.Event) {
		if !e.Type.IsMessageEvent() || e.UnreadCount == nil {
			return
		}
		select {
		case <-counts:
		default:
		}
		select {
		case counts <- *e.UnreadCount:
		default:
		}
	})
	defer unsubscribe()

	// Also the admin check: non-admins fail here before any stream headers.
	n, err := h.svc.UnreadCount(ctx)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	// A count queued during the read is no newer than n.
	select {
	case <-counts:
	default:
	}

	rc := http.NewResponseController(w)
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		h.log.DebugContext(ctx, "stream write deadline not cleared", slog.String("error", err.Error()))
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writeUnread(w, rc, n); err != nil {
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-counts:
			if err := writeUnread(w, rc, n); err != nil {
				return
			}
		case <-ticker.C:
			if _, err := w.Write([]byte(": ping\n\n")); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func writeUnread(w http.ResponseWriter, rc *http.ResponseController, n int) error {
	if _, err := w.Write([]byte("event: unread\ndata: {\"unread\":" + strconv.Itoa(n) + "}\n\n")); err != nil {
		return err
	}
	return rc.Flush()
}
