package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/config"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/handler"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/notify"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/router"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/session"
	"github.com/MateusHenriVieira/intellidocs-frontend/pkg/logger"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl := logger.New(cfg.Log)

	// Backend API client
	api := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, zl)

	// Session store: in-process for a single instance, Redis when the
	// gateway runs replicated.
	var store session.Store
	switch cfg.Session.Store {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = session.NewRedisStore(rdb)
		zl.Info().Str("addr", cfg.Redis.Addr).Msg("using redis session store")
	default:
		store = session.NewMemoryStore()
		zl.Info().Msg("using in-memory session store")
	}

	codec := session.NewCookieCodec(cfg.Session.Secret, "intellidocs-console")
	handler.ConfigureCookies(handler.CookieSettings{
		Secure: cfg.Session.CookieSecure,
		MaxAge: int(cfg.Session.TTL.Seconds()),
	})

	poller := notify.NewPoller(api, cfg.Notify.PollInterval)

	// Handlers
	h := router.Handlers{
		Auth:         handler.NewAuthHandler(api, store, codec, poller, cfg.Session.TTL),
		Nav:          handler.NewNavHandler(),
		Report:       handler.NewReportHandler(api),
		Search:       handler.NewSearchHandler(api),
		Upload:       handler.NewUploadHandler(api),
		Document:     handler.NewDocumentHandler(api),
		User:         handler.NewUserHandler(api),
		Tenant:       handler.NewTenantHandler(api),
		Department:   handler.NewDepartmentHandler(api),
		Audit:        handler.NewAuditHandler(api),
		Notification: handler.NewNotificationHandler(api, poller),
		Integration:  handler.NewIntegrationHandler(api),
		Public:       handler.NewPublicHandler(api),
		Health:       handler.NewHealthHandler(version),
	}

	r := router.Setup(zl, codec, store, cfg.CORS.AllowedOrigins, h)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info().Str("addr", cfg.Server.Port).Str("backend", cfg.Backend.BaseURL).Msg("console gateway starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		zl.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
