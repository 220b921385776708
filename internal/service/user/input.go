package user

import (
	"strings"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

const (
	defaultAccountPageSize = 50
	maxAccountPageSize     = 200
)

// ListAccountsInput holds parameters for the admin account search.
type ListAccountsInput struct {
	// Query is a case-insensitive substring of the email address.
	Query  string
	Limit  int
	Offset int
}

func (i ListAccountsInput) filter() domain.AccountFilter {
	limit := i.Limit
	if limit <= 0 {
		limit = defaultAccountPageSize
	}
	if limit > maxAccountPageSize {
		limit = maxAccountPageSize
	}
	return domain.AccountFilter{
		Email:  strings.TrimSpace(i.Query),
		Limit:  limit,
		Offset: max(i.Offset, 0),
	}
}

// parseRole validates a role name coming from a request.
func parseRole(s string) (domain.UserRole, error) {
	role := domain.UserRole(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", domain.NewValidationError("role", "must be 'user' or 'admin'")
	}
	return role, nil
}

// AccountList is a page of accounts.
type AccountList struct {
	Accounts []domain.Account
	Total    int
	Limit    int
	Offset   int
}
