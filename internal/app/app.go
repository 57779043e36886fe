package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres"
	auditrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/audit"
	catalogrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/catalog"
	entryrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/entry"
	modreqrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/modreq"
	userrepo "github.com/chiyonofujikam/roadmap-manager-v2/internal/adapter/postgres/user"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/auth"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/config"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/auditlog"
	authsvc "github.com/chiyonofujikam/roadmap-manager-v2/internal/service/auth"
	catalogsvc "github.com/chiyonofujikam/roadmap-manager-v2/internal/service/catalog"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/identity"
	modreqsvc "github.com/chiyonofujikam/roadmap-manager-v2/internal/service/modreq"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/pointage"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/transport/middleware"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/transport/rest"
)

// requestsPerMinute is the per-IP limit enforced by the rate limiter.
const requestsPerMinute = 300

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and HTTP handlers, and serves
// until SIGINT/SIGTERM, then shuts down gracefully.
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

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	entries := entryrepo.New(pool)
	catalogs := catalogrepo.New(pool)
	requests := modreqrepo.New(pool)
	auditRecords := auditrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	audit := auditlog.NewService(logger, auditRecords)
	identitySvc := identity.NewService(logger, users, audit)
	catalogSvc := catalogsvc.NewService(logger, catalogs, audit, cfg.Catalog.FallbackName)
	pointageSvc := pointage.NewService(logger, entries, users, audit)
	requestSvc := modreqsvc.NewService(logger, requests, entries, users, audit, txManager)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	loginSvc := authsvc.NewService(logger, users, jwtManager, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewAuthHandler(loginSvc, identitySvc, logger),
		rest.NewEntryHandler(pointageSvc, logger),
		rest.NewRequestHandler(requestSvc, logger),
		rest.NewCatalogHandler(catalogSvc, logger),
		rest.NewUserHandler(identitySvc, logger),
		rest.NewAuditHandler(audit, logger),
	)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(requestsPerMinute),
		middleware.Auth(jwtManager, identitySvc),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
