// Package message implements the contact Message repository using PostgreSQL.
package message

import (
	"context"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/localbiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

const table = "contact_messages"

var columns = []string{"id", "name", "email", "body", "is_read", "created_at"}

// Repo provides contact message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new message repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Body      string    `db:"body"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

type pageRow struct {
	row
	TotalCount int `db:"total_count"`
}

func (r row) toDomain() domain.Message {
	return domain.Message{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Body:      r.Body,
		IsRead:    r.IsRead,
		CreatedAt: r.CreatedAt,
	}
}

// Create stores a new unread message.
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	q := postgres.Builder().
		Insert(table).
		Columns("id", "name", "email", "body").
		Values(id, m.Name, m.Email, m.Body).
		Suffix(returning())

	return r.one(ctx, q, id)
}

// GetByID returns a message by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	return r.one(ctx, q, id)
}

// List returns one page of messages, newest first, and the total number of
// matches.
func (r *Repo) List(ctx context.Context, f domain.MessageFilter) ([]domain.Message, int, error) {
	limit, offset := postgres.ClampPage(f.Limit, f.Offset)

	q := postgres.Builder().
		Select(slices.Concat(columns, []string{"count(*) OVER() AS total_count"})...).
		From(table)
	if f.UnreadOnly {
		q = q.Where(sq.Eq{"is_read": false})
	}
	q = q.OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []pageRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, 0, postgres.MapError(err, "messages", "list")
	}

	out := make([]domain.Message, len(rows))
	total := 0
	for i, pr := range rows {
		out[i] = pr.toDomain()
		total = pr.TotalCount
	}
	return out, total, nil
}

// SetRead updates the read flag and returns the message.
func (r *Repo) SetRead(ctx context.Context, id uuid.UUID, read bool) (*domain.Message, error) {
	q := postgres.Builder().
		Update(table).
		Set("is_read", read).
		Where(sq.Eq{"id": id}).
		Suffix(returning())
	return r.one(ctx, q, id)
}

// Delete removes a message. Returns false when nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.Builder().Delete(table).Where(sq.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return false, postgres.MapError(err, "message", id)
	}
	return n > 0, nil
}

// CountUnread returns the number of unread messages.
func (r *Repo) CountUnread(ctx context.Context) (int, error) {
	q := postgres.Builder().Select("count(*)").From(table).Where(sq.Eq{"is_read": false})

	var n int
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, q); err != nil {
		return 0, postgres.MapError(err, "messages", "unread")
	}
	return n, nil
}

func (r *Repo) one(ctx context.Context, q sq.Sqlizer, id uuid.UUID) (*domain.Message, error) {
	var dst row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, q); err != nil {
		return nil, postgres.MapError(err, "message", id)
	}
	m := dst.toDomain()
	return &m, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}
