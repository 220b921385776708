// Package kafka forwards notification bus events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// publishMetrics records delivery outcomes.
type publishMetrics interface {
	EventPublished(result string)
}

// NewWriter builds a synchronous writer that waits for all in-sync replicas.
func NewWriter(brokers []string, topic string, writeTimeout time.Duration) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}
}

// Publisher buffers bus events and writes them to Kafka from a single
// goroutine started by Run.
type Publisher struct {
	w       messageWriter
	log     *slog.Logger
	metrics publishMetrics
	queue   chan domain.Event
	timeout time.Duration
}

// NewPublisher creates a publisher with a bounded queue of size buffer.
func NewPublisher(logger *slog.Logger, w messageWriter, m publishMetrics, buffer int, timeout time.Duration) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		w:       w,
		log:     logger.With("component", "kafka_publisher"),
		metrics: m,
		queue:   make(chan domain.Event, buffer),
		timeout: timeout,
	}
}

// Handle enqueues e. It never blocks: when the queue is full the event is
// dropped and counted. Matches notify.Handler.
func (p *Publisher) Handle(ctx context.Context, e domain.Event) {
	select {
	case p.queue <- e:
	default:
		p.metrics.EventPublished("dropped")
		p.log.WarnContext(ctx, "event queue full, dropping event",
			slog.String("type", string(e.Type)),
			slog.String("target_id", e.TargetID.String()),
		)
	}
}

// Run writes queued events until ctx is cancelled, then drains what is left
// and closes the writer.
func (p *Publisher) Run(ctx context.Context) error {
	for {
		select {
		case e := <-p.queue:
			p.write(ctx, e)
		case <-ctx.Done():
			return p.shutdown()
		}
	}
}

func (p *Publisher) shutdown() error {
	drainCtx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	for {
		select {
		case e := <-p.queue:
			p.write(drainCtx, e)
		default:
			if err := p.w.Close(); err != nil {
				return fmt.Errorf("kafka.Publisher close: %w", err)
			}
			return nil
		}
	}
}

func (p *Publisher) write(ctx context.Context, e domain.Event) {
	msg, err := encode(e)
	if err != nil {
		p.metrics.EventPublished("error")
		p.log.Error("encode event", slog.String("type", string(e.Type)), slog.String("error", err.Error()))
		return
	}

	wctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.w.WriteMessages(wctx, msg); err != nil {
		p.metrics.EventPublished("error")
		if !errors.Is(err, context.Canceled) {
			p.log.Error("publish event",
				slog.String("type", string(e.Type)),
				slog.String("target_id", e.TargetID.String()),
				slog.String("error", err.Error()),
			)
		}
		return
	}
	p.metrics.EventPublished("ok")
}

func encode(e domain.Event) (kafka.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(e.TargetID.String()),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}, nil
}
