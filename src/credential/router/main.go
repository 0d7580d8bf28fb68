package credential_router

import (
	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	credential_handler "github.com/ainsongjog/whatsapp-bridge/src/credential/handler"
	"github.com/gofiber/fiber/v2"
)

func Route(app fiber.Router, lawyerMiddleware fiber.Handler, h *credential_handler.Handler) {
	group := app.Group("/whatsapp/credentials")

	group.Put("/",
		lawyerMiddleware,
		auth_middleware.CredentialRateLimiter,
		h.Register)
}
