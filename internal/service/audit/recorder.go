// Package audit records administrative mutations and serves the audit trail.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// writeTimeout bounds an audit insert that outlives the request context.
const writeTimeout = 5 * time.Second

// auditWriter appends audit entries.
type auditWriter interface {
	Create(ctx context.Context, e domain.AuditLogEntry) (*domain.AuditLogEntry, error)
}

// failureMetrics counts entries that could not be written.
type failureMetrics interface {
	AuditFailure(action string)
}

// Recorder writes audit entries after successful admin mutations. It never
// fails the mutation it records.
type Recorder struct {
	log     *slog.Logger
	repo    auditWriter
	metrics failureMetrics
}

// NewRecorder creates a new audit recorder.
func NewRecorder(logger *slog.Logger, repo auditWriter, metrics failureMetrics) *Recorder {
	return &Recorder{
		log:     logger.With("service", "audit"),
		repo:    repo,
		metrics: metrics,
	}
}

// Record appends an entry for a completed admin mutation. It must be called
// after the mutation committed and outside its transaction. Failures are
// logged and counted, never returned.
func (r *Recorder) Record(ctx context.Context, adminID uuid.UUID, action domain.AuditAction, target domain.TargetType, targetID *uuid.UUID) {
	// The mutation already happened: a client disconnect must not drop the entry.
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	_, err := r.repo.Create(wctx, domain.AuditLogEntry{
		AdminID:    adminID,
		Action:     action,
		TargetType: target,
		TargetID:   targetID,
	})
	if err == nil {
		return
	}

	r.metrics.AuditFailure(string(action))

	attrs := []any{
		slog.String("admin_id", adminID.String()),
		slog.String("action", string(action)),
		slog.String("target_type", string(target)),
		slog.String("error", fmt.Errorf("%w: %w", domain.ErrAuditFailed, err).Error()),
	}
	if targetID != nil {
		attrs = append(attrs, slog.String("target_id", targetID.String()))
	}
	r.log.ErrorContext(ctx, "audit write failed", attrs...)
}
