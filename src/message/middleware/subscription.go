package message_middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	common_model "github.com/ainsongjog/whatsapp-bridge/src/common/model"
	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

// BotLawyerCtxKey stores the bot's identifier of the subscribing lawyer.
const BotLawyerCtxKey = "bot_lawyer_id"

var ErrProfileUnavailable = errors.New("bot profile unavailable")

type ProfileSource interface {
	GetProfile(ctx context.Context, lawyer string) whatsapp.ProfileResult
}

// SubscriptionMiddleware accepts websocket upgrades only and resolves which
// bot lawyer the caller is, since webhook events carry the bot's id. Must run
// after the lawyer middleware.
func SubscriptionMiddleware(profiles ProfileSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		lawyer := auth_middleware.GetLawyer(c)
		profile := profiles.GetProfile(c.UserContext(), lawyer)
		if !profile.Success || profile.Lawyer == nil {
			pterm.DefaultLogger.Warn(
				fmt.Sprintf("Refusing message subscription of %s: bot profile unavailable", lawyer),
			)
			return c.Status(fiber.StatusForbidden).JSON(
				common_model.NewApiError("WhatsApp integration not available", ErrProfileUnavailable, "middleware").Send(),
			)
		}

		c.Locals(BotLawyerCtxKey, strconv.FormatInt(profile.Lawyer.ID, 10))
		return c.Next()
	}
}
