// Package notify is an in-process publish/subscribe bus for change events.
// Publishing never blocks on a slow subscriber: handlers are expected to hand
// the event off (to a channel or a queue) and return.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// Handler receives published events.
type Handler func(ctx context.Context, e domain.Event)

// Bus fans events out to subscribers. Safe for concurrent use.
type Bus struct {
	log  *slog.Logger
	now  func() time.Time
	mu   sync.RWMutex
	next uint64
	subs map[uint64]Handler
}

// New creates an empty bus.
func New(logger *slog.Logger) *Bus {
	return &Bus{
		log:  logger.With("component", "notify"),
		now:  time.Now,
		subs: make(map[uint64]Handler),
	}
}

// Subscribe registers h and returns a function that removes it.
// Calling the returned function more than once is safe.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers e to every current subscriber. OccurredAt is filled in
// when zero. A panicking handler is logged and does not affect the others.
func (b *Bus) Publish(ctx context.Context, e domain.Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = b.now().UTC()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		b.deliver(ctx, h, e)
	}
}

func (b *Bus) deliver(ctx context.Context, h Handler, e domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.ErrorContext(ctx, "subscriber panicked", slog.String("event", string(e.Type)), slog.Any("panic", r))
		}
	}()
	h(ctx, e)
}

// Len returns the number of active subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
