package listing

import (
	"strings"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
	"github.com/heartmarshall/localbiz-backend/internal/validate"
)

// ContentInput holds the owner-editable listing fields. It deliberately has
// no status or owner field.
type ContentInput struct {
	Name          string `json:"name"           validate:"required,max=200"`
	Category      string `json:"category"       validate:"required,max=100"`
	Description   string `json:"description"    validate:"max=5000"`
	ContactPerson string `json:"contactPerson"  validate:"max=200"`
	Phone         string `json:"phone"          validate:"max=50"`
	Email         string `json:"email"          validate:"omitempty,email,max=254"`
	Location      string `json:"location"       validate:"max=200"`
}

// CreateInput holds parameters for submitting a listing.
type CreateInput struct {
	ContentInput
}

// UpdateInput holds parameters for an owner edit.
type UpdateInput struct {
	ContentInput
}

func (i *ContentInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Category = strings.TrimSpace(i.Category)
	i.Description = strings.TrimSpace(i.Description)
	i.ContactPerson = strings.TrimSpace(i.ContactPerson)
	i.Phone = strings.TrimSpace(i.Phone)
	i.Email = domain.NormalizeEmail(i.Email)
	i.Location = strings.TrimSpace(i.Location)
}

// Validate normalizes and validates the content.
func (i *ContentInput) Validate() error {
	i.normalize()
	return validate.Struct(i)
}

func (i ContentInput) toDomain() domain.ListingContent {
	return domain.ListingContent{
		Name:          i.Name,
		Category:      i.Category,
		Description:   i.Description,
		ContactPerson: i.ContactPerson,
		Phone:         i.Phone,
		Email:         i.Email,
		Location:      i.Location,
	}
}

// ListInput holds query parameters shared by all listing queries.
type ListInput struct {
	Query    string
	Location string
	Category string
	// Status is only honoured by ListForModeration.
	Status string
	Limit  int
	Offset int
}

// ImageInput holds an uploaded listing image.
type ImageInput struct {
	Filename    string
	ContentType string
	Data        []byte
}
