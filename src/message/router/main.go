package message_router

import (
	message_handler "github.com/ainsongjog/whatsapp-bridge/src/message/handler"
	message_middleware "github.com/ainsongjog/whatsapp-bridge/src/message/middleware"
	message_model "github.com/ainsongjog/whatsapp-bridge/src/message/model"
	websocket_lawyer_manager "github.com/ainsongjog/whatsapp-bridge/src/websocket/lawyer-manager"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func Route(
	app fiber.Router,
	lawyerMiddleware fiber.Handler,
	profiles message_middleware.ProfileSource,
	manager *websocket_lawyer_manager.LawyerChannelManager[message_model.Notification],
) {
	group := app.Group("/websocket/whatsapp")

	group.Get("/messages",
		lawyerMiddleware,
		message_middleware.SubscriptionMiddleware(profiles),
		websocket.New(message_handler.NewMessageSubscription(manager)))
}
