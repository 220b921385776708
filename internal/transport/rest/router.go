package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/localbiz-backend/internal/transport/middleware"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// RouterConfig collects the handlers and cross-cutting pieces mounted by
// NewRouter. Observer, Limiter, Images and MetricsHandler may be nil.
type RouterConfig struct {
	Auth     *AuthHandler
	Admin    *AdminHandler
	Listings *ListingHandler
	Messages *MessageHandler
	Images   *ImageHandler
	Health   *HealthHandler

	MetricsHandler http.Handler
	MetricsPath    string
	Observer       httpObserver

	Limiter          *middleware.RateLimiter
	AuthPerMinute    int
	ContactPerMinute int

	// Middleware wraps the whole mux, outermost first.
	Middleware []middleware.Middleware
}

// NewRouter builds the HTTP handler for the API.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		var handler http.Handler = h
		if len(mws) > 0 {
			handler = middleware.Chain(mws...)(handler)
		}
		if cfg.Observer != nil {
			handler = middleware.Metrics(cfg.Observer, pattern)(handler)
		}
		mux.Handle(pattern, handler)
	}

	authLimit := cfg.limit("auth", cfg.AuthPerMinute)
	contactLimit := cfg.limit("contact", cfg.ContactPerMinute)

	handle("GET /live", cfg.Health.Live)
	handle("GET /ready", cfg.Health.Ready)
	handle("GET /health", cfg.Health.Health)

	handle("POST /auth/register", cfg.Auth.Register, authLimit...)
	handle("POST /auth/login", cfg.Auth.Login, authLimit...)
	handle("POST /auth/refresh", cfg.Auth.Refresh, authLimit...)
	handle("POST /auth/logout", cfg.Auth.Logout)
	handle("GET /me", cfg.Auth.Me)

	handle("GET /listings", cfg.Listings.Browse)
	handle("POST /listings", cfg.Listings.Create)
	handle("GET /listings/{id}", cfg.Listings.Get)
	handle("PUT /listings/{id}", cfg.Listings.Update)
	handle("DELETE /listings/{id}", cfg.Listings.Delete)
	handle("PUT /listings/{id}/image", cfg.Listings.SetImage)
	handle("GET /me/listings", cfg.Listings.Mine)

	handle("POST /contact", cfg.Messages.Submit, contactLimit...)

	handle("GET /admin/listings", cfg.Listings.Moderation)
	handle("POST /admin/listings/{id}/{action}", cfg.Listings.Moderate)
	handle("GET /admin/accounts", cfg.Admin.Accounts)
	handle("PUT /admin/accounts/{id}/role", cfg.Admin.SetRole)
	handle("GET /admin/audit-logs", cfg.Admin.AuditLogs)

	handle("GET /admin/messages", cfg.Messages.List)
	handle("GET /admin/messages/unread-count", cfg.Messages.UnreadCount)
	handle("GET /admin/messages/stream", cfg.Messages.Stream)
	handle("GET /admin/messages/{id}", cfg.Messages.Get)
	handle("POST /admin/messages/{id}/read", cfg.Messages.MarkRead)
	handle("DELETE /admin/messages/{id}", cfg.Messages.Delete)

	if cfg.Images != nil {
		handle("GET /images/{key...}", cfg.Images.Serve)
	}
	if cfg.MetricsHandler != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, cfg.MetricsHandler)
	}

	return middleware.Chain(cfg.Middleware...)(mux)
}

func (cfg RouterConfig) limit(route string, perMinute int) []middleware.Middleware {
	if cfg.Limiter == nil || perMinute <= 0 {
		return nil
	}
	return []middleware.Middleware{cfg.Limiter.Limit(route, perMinute)}
}
