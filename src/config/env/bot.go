package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
)

var (
	BotURL     = "http://localhost:5001"
	BotEnabled = true
	BotTimeout = 30 * time.Second

	// LawyerKeys seeds the credential store at boot. Format: "email=key,email=key".
	LawyerKeys string
)

func loadBotEnv() {
	if val := os.Getenv("WHATSAPP_BOT_URL"); val != "" {
		BotURL = val
	}

	if val := os.Getenv("WHATSAPP_BOT_ENABLED"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			BotEnabled = parsed
		}
	}

	if val := os.Getenv("WHATSAPP_BOT_TIMEOUT_SECONDS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			BotTimeout = time.Duration(parsed) * time.Second
		}
	}

	LawyerKeys = os.Getenv("WHATSAPP_LAWYER_KEYS")

	if BotEnabled {
		pterm.DefaultLogger.Info(
			fmt.Sprintf("WhatsApp bot integration is ENABLED at %s with timeout %s", BotURL, BotTimeout),
		)
	} else {
		pterm.DefaultLogger.Warn("WhatsApp bot integration is DISABLED")
	}
}
