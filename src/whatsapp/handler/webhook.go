package whatsapp_handler

import (
	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	common_model "github.com/ainsongjog/whatsapp-bridge/src/common/model"
	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
	"github.com/ainsongjog/whatsapp-bridge/src/validators"
	whatsapp_model "github.com/ainsongjog/whatsapp-bridge/src/whatsapp/model"
	"github.com/gofiber/fiber/v2"
)

// RegisterWebhook asks the bot to call url on message events.
//
//	@Summary		Register a webhook
//	@Description	Registers a callback URL on the bot for the calling lawyer. eventType defaults to message_received.
//	@Tags			WhatsApp
//	@Accept			json
//	@Produce		json
//	@Param			webhook	body		whatsapp_model.RegisterWebhook	true	"Webhook data"
//	@Success		200		{object}	whatsapp.RegisterWebhookResult	"Registration result"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request body"
//	@Failure		401		{object}	common_model.DescriptiveError	"Not authenticated"
//	@Security		ApiKeyAuth
//	@Router			/whatsapp/webhook [post]
func (h *Handler) RegisterWebhook(c *fiber.Ctx) error {
	var body whatsapp_model.RegisterWebhook
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	eventType := body.EventType
	if eventType == "" {
		eventType = whatsapp.EventMessageReceived
	}

	result := h.Proxy.RegisterWebhook(c.UserContext(), auth_middleware.GetLawyer(c), body.URL, eventType)
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetWebhooks lists the webhooks registered on the bot.
//
//	@Summary		List webhooks
//	@Tags			WhatsApp
//	@Produce		json
//	@Success		200	{array}		whatsapp.Webhook				"Webhooks"
//	@Failure		401	{object}	common_model.DescriptiveError	"Not authenticated"
//	@Security		ApiKeyAuth
//	@Router			/whatsapp/webhooks [get]
func (h *Handler) GetWebhooks(c *fiber.Ctx) error {
	webhooks := h.Proxy.ListWebhooks(c.UserContext(), auth_middleware.GetLawyer(c))
	return c.Status(fiber.StatusOK).JSON(webhooks)
}
