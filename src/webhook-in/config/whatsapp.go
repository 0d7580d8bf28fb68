package webhook_in_config

import (
	webhook_in_handler "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/handler"
	webhook_in_middleware "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/middleware"
	webhook_in_service "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/service"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

const Path = "/webhooks/whatsapp"

type Config struct {
	Path          string
	Secret        string
	RequireSecret bool
	Sink          webhook_in_service.EventSink
}

// ServeWebhook mounts the bot webhook receiver on router.
func ServeWebhook(router fiber.Router, cfg Config) {
	if cfg.Path == "" {
		cfg.Path = Path
	}
	if cfg.Sink == nil {
		cfg.Sink = webhook_in_service.LogSink{}
	}

	if cfg.Secret == "" && !cfg.RequireSecret {
		pterm.DefaultLogger.Warn("No webhook secret configured, " + cfg.Path + " accepts unauthenticated deliveries")
	}

	receiver := webhook_in_handler.NewReceiver(cfg.Sink)
	router.Post(
		cfg.Path,
		webhook_in_middleware.VerifySecret(cfg.Secret, cfg.RequireSecret),
		receiver.Handle,
	)

	pterm.DefaultLogger.Info("Registered WhatsApp bot webhook at " + cfg.Path)
}
