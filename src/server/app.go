package server

import (
	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	credential_handler "github.com/ainsongjog/whatsapp-bridge/src/credential/handler"
	credential_router "github.com/ainsongjog/whatsapp-bridge/src/credential/router"
	credential_service "github.com/ainsongjog/whatsapp-bridge/src/credential/service"
	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
	message_model "github.com/ainsongjog/whatsapp-bridge/src/message/model"
	message_router "github.com/ainsongjog/whatsapp-bridge/src/message/router"
	"github.com/ainsongjog/whatsapp-bridge/src/validators"
	webhook_in_config "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/config"
	webhook_in_service "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/service"
	websocket_lawyer_manager "github.com/ainsongjog/whatsapp-bridge/src/websocket/lawyer-manager"
	whatsapp_handler "github.com/ainsongjog/whatsapp-bridge/src/whatsapp/handler"
	whatsapp_router "github.com/ainsongjog/whatsapp-bridge/src/whatsapp/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// Dependencies are the collaborators the HTTP app is built from.
type Dependencies struct {
	Store   credential_service.Store
	Proxy   *whatsapp.Proxy
	Sink    webhook_in_service.EventSink
	Manager *websocket_lawyer_manager.LawyerChannelManager[message_model.Notification]

	JWTSecret              string
	CredentialsTrustHeader bool
	WebhookSecret          string
	WebhookRequireSecret   bool
}

func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		ExposeHeaders: "Retry-After, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset",
	}))

	validators.InitValidators()

	lawyerMiddleware := auth_middleware.NewLawyerMiddleware(deps.JWTSecret)

	// Serving http endpoints
	webhook_in_config.ServeWebhook(app, webhook_in_config.Config{
		Secret:        deps.WebhookSecret,
		RequireSecret: deps.WebhookRequireSecret,
		Sink:          deps.Sink,
	})
	makeDocs(app)
	mountCredentials(app, lawyerMiddleware, deps)
	whatsapp_router.Route(app, lawyerMiddleware, whatsapp_handler.New(deps.Proxy))

	// Serving websockets
	message_router.Route(app, lawyerMiddleware, deps.Proxy, deps.Manager)

	return app
}

// mountCredentials serves key registration only when the caller identity
// cannot be spoofed, unless header identity is explicitly trusted.
func mountCredentials(app fiber.Router, lawyerMiddleware fiber.Handler, deps Dependencies) {
	if deps.JWTSecret == "" {
		if !deps.CredentialsTrustHeader {
			pterm.DefaultLogger.Warn(
				"PUT /whatsapp/credentials is disabled: without JWT_SECRET any caller could replace another lawyer's API key. Set CREDENTIALS_TRUST_HEADER=true to enable it anyway",
			)
			return
		}
		pterm.DefaultLogger.Warn(
			"PUT /whatsapp/credentials trusts the X-Lawyer-Email header, any caller can replace any lawyer's API key",
		)
	}

	credential_router.Route(app, lawyerMiddleware, credential_handler.New(deps.Store))
}
