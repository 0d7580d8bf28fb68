package env

import (
	"os"

	"github.com/pterm/pterm"
)

var (
	WebhookSecret        string
	WebhookRequireSecret bool // Reject every delivery when no secret is configured
)

func loadWebhookEnv() {
	WebhookSecret = os.Getenv("WHATSAPP_WEBHOOK_SECRET")
	WebhookRequireSecret = os.Getenv("WHATSAPP_WEBHOOK_REQUIRE_SECRET") == "true"

	switch {
	case WebhookSecret != "":
		pterm.DefaultLogger.Info("Webhook secret verification is ENABLED")
	case WebhookRequireSecret:
		pterm.DefaultLogger.Warn("WHATSAPP_WEBHOOK_SECRET not set and a secret is required, all webhook deliveries will be rejected")
	}
}
