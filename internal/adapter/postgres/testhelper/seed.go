package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount inserts an account with the given role.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.Account {
	t.Helper()

	acc := domain.Account{
		ID:           uuid.New(),
		Email:        "account-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$seededhashseededhashseededhashseededhashseededhashse",
		Role:         role,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO accounts (id, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		acc.ID, acc.Email, acc.PasswordHash, string(acc.Role),
	).Scan(&acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}
	return acc
}

// SeedListing inserts a listing owned by ownerID with the given status.
func SeedListing(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, status domain.ListingStatus) domain.Listing {
	t.Helper()

	suffix := uniqueSuffix()
	l := domain.Listing{
		ID:      uuid.New(),
		OwnerID: ownerID,
		ListingContent: domain.ListingContent{
			Name:     "Bakery " + suffix,
			Category: "food",
			Location: "Springfield",
		},
		Status: status,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO listings (id, owner_id, name, category, location, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		l.ID, l.OwnerID, l.Name, l.Category, l.Location, string(l.Status),
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedListing: %v", err)
	}
	return l
}
