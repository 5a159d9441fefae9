package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk/internal/api/http"
	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/identity"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/session"
	"github.com/spec-kit/helpdesk/internal/storage"
	"github.com/spec-kit/helpdesk/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer kv.Close() //nolint:errcheck

	roster := identity.NewDemoRoster()

	dispatcher := events.NewInMemoryDispatcher()
	registerAuditLog(dispatcher, logger)

	domainStore := store.New(store.Dependencies{
		KV:         kv,
		Roster:     roster,
		Logger:     logger,
		Dispatcher: dispatcher,
	})
	domainStore.Open(ctx)

	sessions := session.NewManager(roster, kv, logger)
	if user := sessions.Restore(ctx); user != nil {
		logger.Info("restored persisted session", zap.String("username", user.Username))
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokens)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, kv, metrics),
		Auth:           handlers.NewAuthHandler(sessions, tokens),
		Tickets:        handlers.NewTicketsHandler(domainStore),
		Inventory:      handlers.NewInventoryHandler(domainStore),
		Settings:       handlers.NewSettingsHandler(domainStore),
		Dashboard:      handlers.NewDashboardHandler(domainStore),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// registerAuditLog subscribes a structured audit entry per domain event.
func registerAuditLog(dispatcher events.Dispatcher, logger *zap.Logger) {
	audit := func(_ context.Context, event events.Event) error {
		logger.Info("domain event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Any("payload", event.Payload),
		)
		return nil
	}
	for _, eventType := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketUpdated,
		events.EventInventoryItemAdded,
		events.EventSettingsUpdated,
	} {
		dispatcher.Subscribe(eventType, audit)
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
