package whatsapp_router

import (
	whatsapp_handler "github.com/ainsongjog/whatsapp-bridge/src/whatsapp/handler"
	"github.com/gofiber/fiber/v2"
)

func Route(app fiber.Router, lawyerMiddleware fiber.Handler, h *whatsapp_handler.Handler) {
	group := app.Group("/whatsapp")

	messageRoutes(group, lawyerMiddleware, h)
	clientRoutes(group, lawyerMiddleware, h)
	webhookRoutes(group, lawyerMiddleware, h)
	group.Get("/profile", lawyerMiddleware, h.GetProfile)
}

func messageRoutes(group fiber.Router, lawyerMiddleware fiber.Handler, h *whatsapp_handler.Handler) {
	group.Post("/send", lawyerMiddleware, h.SendMessage)
	group.Get("/conversations/:phoneNumber", lawyerMiddleware, h.GetConversation)
}

func clientRoutes(group fiber.Router, lawyerMiddleware fiber.Handler, h *whatsapp_handler.Handler) {
	group.Get("/clients", lawyerMiddleware, h.GetClients)
	group.Post("/clients", lawyerMiddleware, h.AddClient)
}

func webhookRoutes(group fiber.Router, lawyerMiddleware fiber.Handler, h *whatsapp_handler.Handler) {
	group.Post("/webhook", lawyerMiddleware, h.RegisterWebhook)
	group.Get("/webhooks", lawyerMiddleware, h.GetWebhooks)
}
