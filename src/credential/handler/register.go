package credential_handler

import (
	"fmt"

	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	common_model "github.com/ainsongjog/whatsapp-bridge/src/common/model"
	credential_model "github.com/ainsongjog/whatsapp-bridge/src/credential/model"
	credential_service "github.com/ainsongjog/whatsapp-bridge/src/credential/service"
	"github.com/ainsongjog/whatsapp-bridge/src/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

type Handler struct {
	Store credential_service.Store
}

func New(store credential_service.Store) *Handler {
	return &Handler{Store: store}
}

// Register stores the bot API key of the calling lawyer.
//
//	@Summary		Register bot API key
//	@Description	Stores or replaces the WhatsApp bot API key used for the calling lawyer's requests.
//	@Tags			WhatsApp
//	@Accept			json
//	@Produce		json
//	@Param			credential	body		credential_model.RegisterCredential	true	"API key"
//	@Success		200			{object}	credential_model.RegisterResult		"Stored"
//	@Failure		400			{object}	common_model.DescriptiveError		"Invalid request body"
//	@Failure		401			{object}	common_model.DescriptiveError		"Not authenticated"
//	@Failure		429			{object}	common_model.DescriptiveError		"Too many requests"
//	@Failure		500			{object}	common_model.DescriptiveError		"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/whatsapp/credentials [put]
func (h *Handler) Register(c *fiber.Ctx) error {
	lawyer := auth_middleware.GetLawyer(c)

	var body credential_model.RegisterCredential
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

	if err := h.Store.Register(c.UserContext(), lawyer, body.APIKey); err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to register WhatsApp API key for %s: %s", lawyer, err.Error()),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to register api key", err, "credential").Send(),
		)
	}

	pterm.DefaultLogger.Info(fmt.Sprintf("Registered WhatsApp API key for %s", lawyer))
	return c.Status(fiber.StatusOK).JSON(credential_model.RegisterResult{Success: true})
}
