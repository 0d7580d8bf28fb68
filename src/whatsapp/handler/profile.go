package whatsapp_handler

import (
	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the lawyer profile known to the bot.
//
//	@Summary		Get bot profile
//	@Tags			WhatsApp
//	@Produce		json
//	@Success		200	{object}	whatsapp.ProfileResult			"Profile"
//	@Failure		401	{object}	common_model.DescriptiveError	"Not authenticated"
//	@Security		ApiKeyAuth
//	@Router			/whatsapp/profile [get]
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	profile := h.Proxy.GetProfile(c.UserContext(), auth_middleware.GetLawyer(c))
	return c.Status(fiber.StatusOK).JSON(profile)
}
