package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
	"github.com/heartmarshall/localbiz-backend/internal/validate"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordBytes = 72

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// Validate normalizes the email and validates the input against the
// configured minimum password length.
func (i *RegisterInput) Validate(minPassword int) error {
	i.Email = domain.NormalizeEmail(i.Email)

	err := validate.Struct(i)
	if i.Password == "" || len(i.Password) >= minPassword {
		return err
	}

	short := domain.FieldError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", minPassword)}
	if err == nil {
		return domain.NewValidationErrors([]domain.FieldError{short})
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		verr.Errors = append(verr.Errors, short)
		return verr
	}
	return err
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// Validate validates the login input.
func (i *LoginInput) Validate() error {
	i.Email = strings.TrimSpace(i.Email)
	return validate.Struct(i)
}

// RefreshInput holds parameters for token refresh.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required,max=512"`
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	return validate.Struct(i)
}
