package message

import (
	"strings"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
	"github.com/heartmarshall/localbiz-backend/internal/validate"
)

// SubmitInput holds a contact form submission.
type SubmitInput struct {
	Name  string `json:"name"    validate:"required,max=200"`
	Email string `json:"email"   validate:"required,email,max=254"`
	Body  string `json:"message" validate:"required,max=5000"`
}

// Validate normalizes and validates the submission.
func (i *SubmitInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = domain.NormalizeEmail(i.Email)
	i.Body = strings.TrimSpace(i.Body)
	return validate.Struct(i)
}

// ListInput holds the parameters for listing messages.
type ListInput struct {
	UnreadOnly bool `json:"unreadOnly"`
	Limit      int  `json:"limit"       validate:"min=0,max=200"`
	Offset     int  `json:"offset"      validate:"min=0"`
}

// Validate checks paging bounds.
func (i ListInput) Validate() error {
	return validate.Struct(i)
}

// ListResult is a page of messages.
type ListResult struct {
	Messages []domain.Message
	Total    int
	Limit    int
	Offset   int
}
