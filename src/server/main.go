package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ainsongjog/whatsapp-bridge/src/config/env"
	"github.com/ainsongjog/whatsapp-bridge/src/database"
	database_migrate "github.com/ainsongjog/whatsapp-bridge/src/database/migrate"
	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
	message_model "github.com/ainsongjog/whatsapp-bridge/src/message/model"
	message_service "github.com/ainsongjog/whatsapp-bridge/src/message/service"
	webhook_in_service "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/service"
	websocket_lawyer_manager "github.com/ainsongjog/whatsapp-bridge/src/websocket/lawyer-manager"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

// Serve wires every component from the environment and listens on
// SERVER_PORT until SIGINT or SIGTERM.
func Serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if env.DatabaseRequired() {
		if err := database.Load(); err != nil {
			return err
		}
		if err := database_migrate.Up(ctx, database.DB, env.DatabaseDriver); err != nil {
			return err
		}
	}

	store, closeStore, err := loadStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	manager := websocket_lawyer_manager.CreateLawyerChannelManager[message_model.Notification]()
	sinks := webhook_in_service.MultiSink{
		webhook_in_service.LogSink{},
		message_service.NewNotifySink(manager),
	}
	if env.MessageStoreEnabled {
		sinks = append(sinks, message_service.NewStoreSink(database.DB))
	}

	app := NewApp(Dependencies{
		Store:                  store,
		Proxy:                  whatsapp.Load(store),
		Sink:                   sinks,
		Manager:                manager,
		JWTSecret:              env.JWTSecret,
		CredentialsTrustHeader: env.CredentialsTrustHeader,
		WebhookSecret:          env.WebhookSecret,
		WebhookRequireSecret:   env.WebhookRequireSecret,
	})

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return app.Listen(fmt.Sprintf(":%s", env.ServerPort))
	})
	eg.Go(func() error {
		<-ctx.Done()
		pterm.DefaultLogger.Info("Shutdown signal received, stopping server...")
		return app.Shutdown()
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	pterm.DefaultLogger.Info("Server stopped")
	return nil
}
