package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/localbiz-backend/internal/access"
	"github.com/heartmarshall/localbiz-backend/internal/adapter/blobstore"
	"github.com/heartmarshall/localbiz-backend/internal/adapter/kafka"
	"github.com/heartmarshall/localbiz-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/localbiz-backend/internal/adapter/postgres/account"
	auditrepo "github.com/heartmarshall/localbiz-backend/internal/adapter/postgres/audit"
	listingrepo "github.com/heartmarshall/localbiz-backend/internal/adapter/postgres/listing"
	messagerepo "github.com/heartmarshall/localbiz-backend/internal/adapter/postgres/message"
	tokenrepo "github.com/heartmarshall/localbiz-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/localbiz-backend/internal/auth"
	"github.com/heartmarshall/localbiz-backend/internal/config"
	"github.com/heartmarshall/localbiz-backend/internal/metrics"
	"github.com/heartmarshall/localbiz-backend/internal/notify"
	auditsvc "github.com/heartmarshall/localbiz-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/localbiz-backend/internal/service/auth"
	"github.com/heartmarshall/localbiz-backend/internal/service/listing"
	"github.com/heartmarshall/localbiz-backend/internal/service/message"
	"github.com/heartmarshall/localbiz-backend/internal/service/user"
	"github.com/heartmarshall/localbiz-backend/internal/transport/middleware"
	"github.com/heartmarshall/localbiz-backend/internal/transport/rest"
)

const eventQueueSize = 1024

// Deps are the resources owned by the caller of NewAPI.
// Metrics may be nil, which disables /metrics and request metrics.
type Deps struct {
	Pool    *pgxpool.Pool
	Store   *blobstore.Store
	Bus     *notify.Bus
	Metrics *metrics.Metrics
}

// API is the assembled HTTP application.
type API struct {
	Handler http.Handler
	Auth    *authsvc.Service
	Limiter *middleware.RateLimiter
}

// Close stops background work started by NewAPI.
func (a *API) Close() {
	if a.Limiter != nil {
		a.Limiter.Stop()
	}
}

// NewAPI wires repositories, services and handlers into an http.Handler.
func NewAPI(cfg *config.Config, logger *slog.Logger, d Deps) *API {
	accounts := accountrepo.New(d.Pool)
	tokens := tokenrepo.New(d.Pool)
	listings := listingrepo.New(d.Pool)
	messages := messagerepo.New(d.Pool)
	auditLog := auditrepo.New(d.Pool)
	txm := postgres.NewTxManager(d.Pool)

	jwtMgr := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	resolver := access.NewResolver(jwtMgr, accounts)
	recorder := auditsvc.NewRecorder(logger, auditLog, d.Metrics)

	authService := authsvc.NewService(logger, accounts, tokens, txm, jwtMgr, cfg.Auth)
	userService := user.NewService(logger, accounts, recorder, d.Bus)
	listingService := listing.NewService(logger, listings, d.Store, recorder, d.Bus, d.Metrics, txm, cfg.Listing, cfg.Storage)
	messageService := message.NewService(logger, messages, recorder, d.Bus)
	auditService := auditsvc.NewService(logger, auditLog)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, d.Metrics)
	}

	routes := rest.RouterConfig{
		Auth:     rest.NewAuthHandler(authService, userService, logger),
		Admin:    rest.NewAdminHandler(userService, auditService, logger),
		Listings: rest.NewListingHandler(listingService, cfg.Storage.MaxImageBytes, logger),
		Messages: rest.NewMessageHandler(messageService, d.Bus, logger),
		Images:   rest.NewImageHandler(d.Store, logger),
		Health:   rest.NewHealthHandler(d.Pool, d.Store, BuildVersion()),

		Limiter:          limiter,
		AuthPerMinute:    cfg.RateLimit.AuthPerMinute,
		ContactPerMinute: cfg.RateLimit.ContactPerMin,

		Middleware: []middleware.Middleware{
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(resolver, d.Metrics, logger),
		},
	}
	if d.Metrics != nil && cfg.Metrics.Enabled {
		if d.Bus != nil {
			d.Metrics.TrackSubscribers(d.Bus.Len)
		}
		routes.MetricsHandler = d.Metrics.Handler()
		routes.MetricsPath = cfg.Metrics.Path
		routes.Observer = d.Metrics
	}

	return &API{
		Handler: rest.NewRouter(routes),
		Auth:    authService,
		Limiter: limiter,
	}
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the object store, serves the API and shuts everything down
// when ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	store, err := blobstore.Open(ctx, cfg.Storage.BucketURL, cfg.Storage.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("open object store: %w", err)
	}
	defer store.Close() //nolint:errcheck

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}
	bus := notify.New(logger)

	api := NewAPI(cfg, logger, Deps{Pool: pool, Store: store, Bus: bus, Metrics: m})
	defer api.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      api.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Events.Enabled() {
		writer := kafka.NewWriter(cfg.Events.Brokers(), cfg.Events.KafkaTopic, cfg.Events.WriteTimeout)
		publisher := kafka.NewPublisher(logger, writer, m, eventQueueSize, cfg.Events.WriteTimeout)
		unsubscribe := bus.Subscribe(publisher.Handle)
		defer unsubscribe()

		g.Go(func() error { return publisher.Run(gctx) })
		logger.Info("kafka event sink enabled",
			slog.Any("brokers", cfg.Events.Brokers()),
			slog.String("topic", cfg.Events.KafkaTopic),
		)
	}

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
