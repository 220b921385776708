// Package audit implements the admin audit log repository using PostgreSQL.
// The table is append-only: the repository exposes no update or delete.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/localbiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

const table = "admin_audit_logs"

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	AdminID    uuid.UUID  `db:"admin_id"`
	Action     string     `db:"action"`
	TargetType string     `db:"target_type"`
	TargetID   *uuid.UUID `db:"target_id"`
	CreatedAt  time.Time  `db:"created_at"`
}

type listRow struct {
	row
	AdminEmail string `db:"admin_email"`
	TotalCount int    `db:"total_count"`
}

func (r row) toDomain() domain.AuditLogEntry {
	return domain.AuditLogEntry{
		ID:         r.ID,
		AdminID:    r.AdminID,
		Action:     domain.AuditAction(r.Action),
		TargetType: domain.TargetType(r.TargetType),
		TargetID:   r.TargetID,
		CreatedAt:  r.CreatedAt,
	}
}

// Create appends an audit entry.
func (r *Repo) Create(ctx context.Context, e domain.AuditLogEntry) (*domain.AuditLogEntry, error) {
	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	q := postgres.Builder().
		Insert(table).
		Columns("id", "admin_id", "action", "target_type", "target_id").
		Values(id, e.AdminID, string(e.Action), string(e.TargetType), e.TargetID).
		Suffix("RETURNING id, admin_id, action, target_type, target_id, created_at")

	var dst row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, q); err != nil {
		return nil, postgres.MapError(err, "audit_log", id)
	}

	out := dst.toDomain()
	return &out, nil
}

// List returns one page of entries, newest first, with the acting admin's
// email, and the total number of entries.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.AuditLogEntry, int, error) {
	limit, offset = postgres.ClampPage(limit, offset)

	q := postgres.Builder().
		Select(
			"l.id", "l.admin_id", "l.action", "l.target_type", "l.target_id", "l.created_at",
			"coalesce(a.email, '') AS admin_email",
			"count(*) OVER() AS total_count",
		).
		From(table+" l").
		LeftJoin("accounts a ON a.id = l.admin_id").
		OrderBy("l.created_at DESC", "l.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []listRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, 0, postgres.MapError(err, "audit_logs", "list")
	}

	out := make([]domain.AuditLogEntry, len(rows))
	total := 0
	for i, lr := range rows {
		out[i] = lr.toDomain()
		out[i].AdminEmail = lr.AdminEmail
		total = lr.TotalCount
	}
	return out, total, nil
}
