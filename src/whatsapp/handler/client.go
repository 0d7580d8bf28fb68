package whatsapp_handler

import (
	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	common_model "github.com/ainsongjog/whatsapp-bridge/src/common/model"
	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
	"github.com/ainsongjog/whatsapp-bridge/src/validators"
	whatsapp_model "github.com/ainsongjog/whatsapp-bridge/src/whatsapp/model"
	"github.com/gofiber/fiber/v2"
)

// GetClients lists the lawyer's WhatsApp clients.
//
//	@Summary		List clients
//	@Description	Returns the clients linked to the calling lawyer on the bot. An empty list is returned when the bot is unreachable.
//	@Tags			WhatsApp
//	@Produce		json
//	@Success		200	{array}		whatsapp.LawyerClient			"Clients"
//	@Failure		401	{object}	common_model.DescriptiveError	"Not authenticated"
//	@Security		ApiKeyAuth
//	@Router			/whatsapp/clients [get]
func (h *Handler) GetClients(c *fiber.Ctx) error {
	clients := h.Proxy.GetLawyerClients(c.UserContext(), auth_middleware.GetLawyer(c))
	return c.Status(fiber.StatusOK).JSON(clients)
}

// AddClient links a new client to the lawyer.
//
//	@Summary		Add a client
//	@Description	Adds a client to the calling lawyer's WhatsApp contacts.
//	@Tags			WhatsApp
//	@Accept			json
//	@Produce		json
//	@Param			client	body		whatsapp_model.AddClient		true	"Client data"
//	@Success		200		{object}	whatsapp.AddClientResult		"Add result"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request body"
//	@Failure		401		{object}	common_model.DescriptiveError	"Not authenticated"
//	@Security		ApiKeyAuth
//	@Router			/whatsapp/clients [post]
func (h *Handler) AddClient(c *fiber.Ctx) error {
	var body whatsapp_model.AddClient
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

	result := h.Proxy.AddClient(c.UserContext(), auth_middleware.GetLawyer(c), whatsapp.NewClient{
		Name:        body.Name,
		PhoneNumber: body.PhoneNumber,
		Email:       body.Email,
	})

	return c.Status(fiber.StatusOK).JSON(result)
}
