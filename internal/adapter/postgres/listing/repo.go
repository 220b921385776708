// Package listing implements the Listing repository using PostgreSQL.
// Visibility scopes are translated into SQL predicates here so that hidden
// rows never leave the database.
package listing

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

const table = "listings"

var columns = []string{
	"id", "owner_id", "name", "category", "description", "contact_person",
	"phone", "email", "location", "image_url", "image_key", "status",
	"created_at", "updated_at",
}

// Repo provides listing persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new listing repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            uuid.UUID `db:"id"`
	OwnerID       uuid.UUID `db:"owner_id"`
	Name          string    `db:"name"`
	Category      string    `db:"category"`
	Description   string    `db:"description"`
	ContactPerson string    `db:"contact_person"`
	Phone         string    `db:"phone"`
	Email         string    `db:"email"`
	Location      string    `db:"location"`
	ImageURL      *string   `db:"image_url"`
	ImageKey      *string   `db:"image_key"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type pageRow struct {
	row
	TotalCount int `db:"total_count"`
}

func (r row) toDomain() domain.Listing {
	return domain.Listing{
		ID:      r.ID,
		OwnerID: r.OwnerID,
		ListingContent: domain.ListingContent{
			Name:          r.Name,
			Category:      r.Category,
			Description:   r.Description,
			ContactPerson: r.ContactPerson,
			Phone:         r.Phone,
			Email:         r.Email,
			Location:      r.Location,
		},
		ImageURL:  r.ImageURL,
		ImageKey:  r.ImageKey,
		Status:    domain.ListingStatus(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns the listing if it exists and is admitted by scope.
// A hidden listing is indistinguishable from a missing one.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID, scope domain.ListingScope) (*domain.Listing, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})
	if cond := scopeCond(scope); cond != nil {
		q = q.Where(cond)
	}

	var dst row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, q); err != nil {
		return nil, postgres.MapError(err, "listing", id)
	}

	l := dst.toDomain()
	return &l, nil
}

// GetForUpdate loads a listing without any visibility scope and locks the
// row until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE")

	return r.one(ctx, q, id)
}

// List returns one page of listings matching the filter and the total
// number of matches. The total is still reported for a page past the end.
func (r *Repo) List(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, int, error) {
	limit, offset := postgres.ClampPage(f.Limit, f.Offset)
	querier := postgres.QuerierFromCtx(ctx, r.db)
	matching := filtered(f)

	q := matching.Columns(slices.Concat(columns, []string{"count(*) OVER() AS total_count"})...)
	if f.SortBy == "name" {
		q = q.OrderBy("name ASC", "id ASC")
	} else {
		q = q.OrderBy("created_at DESC", "id DESC")
	}
	q = q.Limit(uint64(limit)).Offset(uint64(offset))

	var rows []pageRow
	if err := postgres.Select(ctx, querier, &rows, q); err != nil {
		return nil, 0, postgres.MapError(err, "listings", "list")
	}

	out := make([]domain.Listing, len(rows))
	total := 0
	for i, pr := range rows {
		out[i] = pr.toDomain()
		total = pr.TotalCount
	}

	if len(rows) == 0 && offset > 0 {
		if err := postgres.GetOne(ctx, querier, &total, matching.Columns("count(*)")); err != nil {
			return nil, 0, postgres.MapError(err, "listings", "count")
		}
	}
	return out, total, nil
}

// filtered selects from the listings table with every filter condition and
// no columns.
func filtered(f domain.ListingFilter) sq.SelectBuilder {
	q := postgres.Builder().Select().From(table)

	if cond := scopeCond(f.Scope); cond != nil {
		q = q.Where(cond)
	}
	if f.OwnerID != nil {
		q = q.Where(sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.Search != "" {
		q = q.Where(sq.ILike{"name": "%" + postgres.EscapeLike(f.Search) + "%"})
	}
	if f.Location != "" {
		q = q.Where(sq.ILike{"location": "%" + postgres.EscapeLike(f.Location) + "%"})
	}
	if f.Category != "" {
		q = q.Where(sq.Eq{"category": f.Category})
	}
	return q
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a listing. The status column is always written as pending.
func (r *Repo) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	id := l.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	q := postgres.Builder().
		Insert(table).
		Columns("id", "owner_id", "name", "category", "description", "contact_person",
			"phone", "email", "location", "status").
		Values(id, l.OwnerID, l.Name, l.Category, l.Description, l.ContactPerson,
			l.Phone, l.Email, l.Location, string(domain.ListingStatusPending)).
		Suffix(returning())

	return r.one(ctx, q, id)
}

// UpdateContent overwrites the owner-editable fields. Status, owner and
// image columns are never touched.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, c domain.ListingContent) (*domain.Listing, error) {
	return r.one(ctx, updateContentQuery(id, c), id)
}

func updateContentQuery(id uuid.UUID, c domain.ListingContent) sq.UpdateBuilder {
	return postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"name":           c.Name,
			"category":       c.Category,
			"description":    c.Description,
			"contact_person": c.ContactPerson,
			"phone":          c.Phone,
			"email":          c.Email,
			"location":       c.Location,
			"updated_at":     sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": id}).
		Suffix(returning())
}

// SetStatus writes a new moderation status. A listing deleted concurrently
// yields ErrNotFound.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus) (*domain.Listing, error) {
	q := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning())

	return r.one(ctx, q, id)
}

// SetImage stores the public URL and object key of the listing image.
func (r *Repo) SetImage(ctx context.Context, id uuid.UUID, url, key string) (*domain.Listing, error) {
	q := postgres.Builder().
		Update(table).
		Set("image_url", url).
		Set("image_key", key).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning())

	return r.one(ctx, q, id)
}

// Delete removes the listing and returns the deleted row so the caller can
// clean up its image. A missing listing yields ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	q := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		Suffix(returning())

	return r.one(ctx, q, id)
}

func (r *Repo) one(ctx context.Context, q sq.Sqlizer, id uuid.UUID) (*domain.Listing, error) {
	var dst row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, q); err != nil {
		return nil, postgres.MapError(err, "listing", id)
	}
	l := dst.toDomain()
	return &l, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// scopeCond translates a visibility scope into a WHERE predicate.
// nil means unrestricted.
func scopeCond(s domain.ListingScope) sq.Sqlizer {
	if s.IsUnrestricted() {
		return nil
	}

	var or sq.Or
	if len(s.Statuses) > 0 {
		statuses := make([]string, len(s.Statuses))
		for i, st := range s.Statuses {
			statuses[i] = string(st)
		}
		or = append(or, sq.Eq{"status": statuses})
	}
	if s.OrOwnerID != nil {
		or = append(or, sq.Eq{"owner_id": *s.OrOwnerID})
	}
	return or
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}
