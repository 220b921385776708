// Package account implements the Account repository using PostgreSQL.
package account

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

const table = "accounts"

var columns = []string{"id", "email", "password_hash", "role", "created_at", "updated_at"}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type pageRow struct {
	row
	TotalCount int `db:"total_count"`
}

func (r row) toDomain() domain.Account {
	return domain.Account{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	return r.one(ctx, q, id)
}

// GetByEmail returns an account by its normalized email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	email = domain.NormalizeEmail(email)
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"email": email})
	return r.one(ctx, q, email)
}

// GetRole returns only the stored role. It is called once per authenticated
// request, so it reads a single column.
func (r *Repo) GetRole(ctx context.Context, id uuid.UUID) (domain.UserRole, error) {
	q := postgres.Builder().Select("role").From(table).Where(sq.Eq{"id": id})

	var role string
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &role, q); err != nil {
		return "", postgres.MapError(err, "account", id)
	}
	return domain.UserRole(role), nil
}

// List returns one page of accounts ordered by creation time and the total
// number of matches.
func (r *Repo) List(ctx context.Context, f domain.AccountFilter) ([]domain.Account, int, error) {
	limit, offset := postgres.ClampPage(f.Limit, f.Offset)

	q := postgres.Builder().
		Select(slices.Concat(columns, []string{"count(*) OVER() AS total_count"})...).
		From(table)
	if email := strings.TrimSpace(f.Email); email != "" {
		q = q.Where(sq.ILike{"email": "%" + postgres.EscapeLike(email) + "%"})
	}
	q = q.OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []pageRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, 0, postgres.MapError(err, "accounts", "list")
	}

	out := make([]domain.Account, len(rows))
	total := 0
	for i, pr := range rows {
		out[i] = pr.toDomain()
		total = pr.TotalCount
	}
	return out, total, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts an account. A duplicate email yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	role := a.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	q := postgres.Builder().
		Insert(table).
		Columns("id", "email", "password_hash", "role").
		Values(id, domain.NormalizeEmail(a.Email), a.PasswordHash, string(role)).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.one(ctx, q, id)
}

// SetRole updates the stored role of an account.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.Account, error) {
	q := setRoleQuery(role).Where(sq.Eq{"id": id})
	return r.one(ctx, q, id)
}

// SetRoleByEmail updates the role of the account with the given email.
// Used by the operator CLI, which knows accounts by email only.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.Account, error) {
	email = domain.NormalizeEmail(email)
	q := setRoleQuery(role).Where(sq.Eq{"email": email})
	return r.one(ctx, q, email)
}

func setRoleQuery(role domain.UserRole) sq.UpdateBuilder {
	return postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Set("updated_at", sq.Expr("now()")).
		Suffix("RETURNING " + strings.Join(columns, ", "))
}

func (r *Repo) one(ctx context.Context, q sq.Sqlizer, ref any) (*domain.Account, error) {
	var dst row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, q); err != nil {
		return nil, postgres.MapError(err, "account", ref)
	}
	a := dst.toDomain()
	return &a, nil
}
