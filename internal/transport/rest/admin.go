package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
	"github.com/heartmarshall/localbiz-backend/internal/service/audit"
	"github.com/heartmarshall/localbiz-backend/internal/service/user"
)

type accountAdminService interface {
	ListAccounts(ctx context.Context, input user.ListAccountsInput) (*user.AccountList, error)
	SetRole(ctx context.Context, targetID uuid.UUID, roleName string) (*domain.Account, error)
}

type auditService interface {
	List(ctx context.Context, limit, offset int) (*audit.ListResult, error)
}

// AdminHandler serves account management and the audit trail.
type AdminHandler struct {
	accounts accountAdminService
	audit    auditService
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(accounts accountAdminService, audit auditService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		accounts: accounts,
		audit:    audit,
		log:      logger.With("handler", "admin"),
	}
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// Accounts searches accounts by email.
// GET /admin/accounts?q=smith&limit=50&offset=0
func (h *AdminHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.accounts.ListAccounts(r.Context(), user.ListAccountsInput{
		Query:  r.URL.Query().Get("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountPage(res))
}

// SetRole promotes or demotes an account.
// PUT /admin/accounts/{id}/role
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req setRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.accounts.SetRole(r.Context(), id, req.Role)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// AuditLogs returns the audit trail, newest first.
// GET /admin/audit-logs?limit=50&offset=0
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.audit.List(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuditPage(res))
}
