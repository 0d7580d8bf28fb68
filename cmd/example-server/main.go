// Command example-server is a standalone lawyer portal backend that logs
// lawyers in with a session cookie and proxies their requests to the
// WhatsApp bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	credential_service "github.com/ainsongjog/whatsapp-bridge/src/credential/service"
	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		pterm.DefaultLogger.Warn("No .env file found, using flags and system environment")
	}

	port := pflag.String("port", envOr("PORT", "3000"), "port to listen on")
	botURL := pflag.String("bot-url", envOr("WHATSAPP_BOT_URL", whatsapp.DefaultBaseURL), "WhatsApp bot base URL")
	webhookSecret := pflag.String("webhook-secret", os.Getenv("WHATSAPP_WEBHOOK_SECRET"), "shared secret expected in x-webhook-secret")
	lawyers := pflag.StringArray("lawyer", nil, "lawyer login as email:password:apikey (repeatable)")
	pflag.Parse()

	if err := run(*port, *botURL, *webhookSecret, *lawyers); err != nil {
		pterm.DefaultLogger.Fatal(err.Error())
	}
}

func run(port, botURL, webhookSecret string, rawLawyers []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(rawLawyers) == 0 {
		pterm.DefaultLogger.Warn("No --lawyer given, nobody will be able to log in")
	}

	store := credential_service.NewMemoryStore()
	directory, err := newLawyerDirectory(ctx, rawLawyers, bcrypt.DefaultCost, store)
	if err != nil {
		return err
	}

	proxy := whatsapp.NewProxy(whatsapp.Config{BaseURL: botURL, Enabled: true}, store)
	app := newApp(directory, proxy, webhookSecret)

	pterm.DefaultLogger.Info(fmt.Sprintf("Server running on http://localhost:%s", port))
	pterm.DefaultLogger.Info(fmt.Sprintf("WhatsApp Bot URL: %s", botURL))

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return app.Listen(":" + port)
	})
	eg.Go(func() error {
		<-ctx.Done()
		return app.Shutdown()
	})
	return eg.Wait()
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
