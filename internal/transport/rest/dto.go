package rest

import (
	"time"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
	"github.com/heartmarshall/localbiz-backend/internal/service/audit"
	"github.com/heartmarshall/localbiz-backend/internal/service/auth"
	"github.com/heartmarshall/localbiz-backend/internal/service/listing"
	"github.com/heartmarshall/localbiz-backend/internal/service/message"
	"github.com/heartmarshall/localbiz-backend/internal/service/user"
)

type accountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type accountPage struct {
	Accounts []accountResponse `json:"accounts"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type authResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresIn    int             `json:"expiresIn"`
	Account      accountResponse `json:"account"`
}

type listingResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	ContactPerson string    `json:"contactPerson"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Location      string    `json:"location"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type listingPage struct {
	Listings []listingResponse `json:"listings"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type messagePage struct {
	Messages []messageResponse `json:"messages"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type unreadResponse struct {
	Unread int `json:"unread"`
}

type auditEntryResponse struct {
	ID         string    `json:"id"`
	AdminID    string    `json:"adminId"`
	AdminEmail string    `json:"adminEmail,omitempty"`
	Action     string    `json:"action"`
	TargetType string    `json:"targetType"`
	TargetID   *string   `json:"targetId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type auditPage struct {
	Entries []auditEntryResponse `json:"entries"`
	Total   int                  `json:"total"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID.String(),
		Email:     a.Email,
		Role:      a.Role.String(),
		CreatedAt: a.CreatedAt,
	}
}

func toAccountPage(res *user.AccountList) accountPage {
	page := accountPage{
		Accounts: make([]accountResponse, 0, len(res.Accounts)),
		Total:    res.Total,
		Limit:    res.Limit,
		Offset:   res.Offset,
	}
	for i := range res.Accounts {
		page.Accounts = append(page.Accounts, toAccountResponse(&res.Accounts[i]))
	}
	return page
}

func toAuthResponse(res *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    int(res.ExpiresIn.Seconds()),
		Account:      toAccountResponse(res.Account),
	}
}

func toListingResponse(l *domain.Listing) listingResponse {
	return listingResponse{
		ID:            l.ID.String(),
		OwnerID:       l.OwnerID.String(),
		Name:          l.Name,
		Category:      l.Category,
		Description:   l.Description,
		ContactPerson: l.ContactPerson,
		Phone:         l.Phone,
		Email:         l.Email,
		Location:      l.Location,
		ImageURL:      l.ImageURL,
		Status:        l.Status.String(),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func toListingPage(res *listing.ListResult) listingPage {
	page := listingPage{
		Listings: make([]listingResponse, 0, len(res.Listings)),
		Total:    res.Total,
		Limit:    res.Limit,
		Offset:   res.Offset,
	}
	for i := range res.Listings {
		page.Listings = append(page.Listings, toListingResponse(&res.Listings[i]))
	}
	return page
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Body,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func toMessagePage(res *message.ListResult) messagePage {
	page := messagePage{
		Messages: make([]messageResponse, 0, len(res.Messages)),
		Total:    res.Total,
		Limit:    res.Limit,
		Offset:   res.Offset,
	}
	for i := range res.Messages {
		page.Messages = append(page.Messages, toMessageResponse(&res.Messages[i]))
	}
	return page
}

func toAuditPage(res *audit.ListResult) auditPage {
	page := auditPage{
		Entries: make([]auditEntryResponse, 0, len(res.Entries)),
		Total:   res.Total,
	}
	for _, e := range res.Entries {
		entry := auditEntryResponse{
			ID:         e.ID.String(),
			AdminID:    e.AdminID.String(),
			AdminEmail: e.AdminEmail,
			Action:     e.Action.String(),
			TargetType: e.TargetType.String(),
			CreatedAt:  e.CreatedAt,
		}
		if e.TargetID != nil {
			id := e.TargetID.String()
			entry.TargetID = &id
		}
		page.Entries = append(page.Entries, entry)
	}
	return page
}
