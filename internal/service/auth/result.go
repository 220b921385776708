package auth

import (
	"time"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresIn    time.Duration
	Account      *domain.Account
}
