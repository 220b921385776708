package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

type callerResolver interface {
	Resolve(ctx context.Context, token string) (access.Caller, error)
}

type roleFailureCounter interface {
	RoleLookupFailure()
}

// Auth resolves the bearer token into a Caller and stores it in the request
// context. Requests without a token continue as anonymous. An invalid token
// is rejected with 401. When the role cannot be read the request continues
// as a member.
func Auth(resolver callerResolver, failures roleFailureCounter, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			caller, err := resolver.Resolve(r.Context(), token)
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrRoleLookupFailed):
				failures.RoleLookupFailure()
				logger.WarnContext(r.Context(), "role lookup failed, continuing as member",
					slog.String("user_id", caller.AccountID.String()),
					slog.String("error", err.Error()),
				)
			default:
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			reportCaller(w, caller)
			ctx := access.WithCaller(r.Context(), caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
