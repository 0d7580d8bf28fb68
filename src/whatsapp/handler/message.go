package whatsapp_handler

import (
	"net/url"

	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	common_model "github.com/ainsongjog/whatsapp-bridge/src/common/model"
	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
	"github.com/ainsongjog/whatsapp-bridge/src/validators"
	whatsapp_model "github.com/ainsongjog/whatsapp-bridge/src/whatsapp/model"
	"github.com/gofiber/fiber/v2"
)

// SendMessage sends a text or file to a client through the bot.
//
//	@Summary		Send a WhatsApp message
//	@Description	Sends text, a file, or both to a client of the calling lawyer. Bot failures are reported in the result body.
//	@Tags			WhatsApp
//	@Accept			json
//	@Produce		json
//	@Param			message	body		whatsapp_model.SendMessage		true	"Message"
//	@Success		200		{object}	whatsapp.SendResult				"Send result"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request body"
//	@Failure		401		{object}	common_model.DescriptiveError	"Not authenticated"
//	@Security		ApiKeyAuth
//	@Router			/whatsapp/send [post]
func (h *Handler) SendMessage(c *fiber.Ctx) error {
	var body whatsapp_model.SendMessage
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

	result := h.Proxy.SendMessage(c.UserContext(), auth_middleware.GetLawyer(c), whatsapp.OutboundMessage{
		ClientPhoneNumber: body.ClientPhoneNumber,
		Text:              body.Text,
		FilePath:          body.FilePath,
	})

	return c.Status(fiber.StatusOK).JSON(result)
}

// GetConversation returns the message history with a client.
//
//	@Summary		Get conversation history
//	@Description	Returns up to count messages exchanged with the client. An empty message list is returned when the bot is unreachable.
//	@Tags			WhatsApp
//	@Produce		json
//	@Param			phoneNumber	path		string							true	"Client phone number"
//	@Param			count		query		int								false	"Number of messages"	default(50)
//	@Success		200			{object}	whatsapp.ConversationHistory	"Conversation"
//	@Failure		400			{object}	common_model.DescriptiveError	"Invalid phone number"
//	@Failure		401			{object}	common_model.DescriptiveError	"Not authenticated"
//	@Security		ApiKeyAuth
//	@Router			/whatsapp/conversations/{phoneNumber} [get]
func (h *Handler) GetConversation(c *fiber.Ctx) error {
	// Zero or an unparsable count falls back to the default
	count := c.QueryInt("count", whatsapp.DefaultConversationCount)
	if count == 0 {
		count = whatsapp.DefaultConversationCount
	}

	phoneNumber, err := url.PathUnescape(c.Params("phoneNumber"))
	if err != nil || phoneNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("invalid phone number", err, "params").Send(),
		)
	}

	history := h.Proxy.GetConversationHistory(
		c.UserContext(), auth_middleware.GetLawyer(c), phoneNumber, count,
	)

	return c.Status(fiber.StatusOK).JSON(history)
}
