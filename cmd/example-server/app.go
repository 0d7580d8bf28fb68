package main

import (
	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
	"github.com/ainsongjog/whatsapp-bridge/src/validators"
	webhook_in_config "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/config"
	webhook_in_service "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionLawyerKey = "lawyerEmail"

type exampleApp struct {
	lawyers  lawyerDirectory
	proxy    *whatsapp.Proxy
	sessions *session.Store
}

func newApp(lawyers lawyerDirectory, proxy *whatsapp.Proxy, webhookSecret string) *fiber.App {
	a := &exampleApp{
		lawyers:  lawyers,
		proxy:    proxy,
		sessions: session.New(),
	}

	app := fiber.New()
	app.Use(recover.New())
	validators.InitValidators()

	api := app.Group("/api")
	authRoutes(api, a)
	lawyerRoutes(api, a)

	webhook_in_config.ServeWebhook(app, webhook_in_config.Config{
		Path:   "/webhook/whatsapp",
		Secret: webhookSecret,
		Sink:   webhook_in_service.LogSink{},
	})

	return app
}

func authRoutes(api fiber.Router, a *exampleApp) {
	api.Post("/auth/login", auth_middleware.LoginRateLimiter, a.login)
	api.Post("/auth/logout", a.logout)
}

func lawyerRoutes(api fiber.Router, a *exampleApp) {
	api.Get("/profile", a.requireAuth, a.profile)
	api.Get("/clients", a.requireAuth, a.clients)
	api.Post("/clients", a.requireAuth, a.addClient)
	api.Get("/conversations/:phoneNumber", a.requireAuth, a.conversation)
	api.Post("/messages/send", a.requireAuth, a.sendMessage)
	api.Post("/webhooks", a.requireAuth, a.registerWebhook)
	api.Get("/webhooks", a.requireAuth, a.webhooks)
}
