package webhook_in_middleware

import (
	"crypto/subtle"
	"errors"
	"fmt"

	common_model "github.com/ainsongjog/whatsapp-bridge/src/common/model"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

const SecretHeader = "x-webhook-secret"

var (
	ErrInvalidSecret = errors.New("webhook secret does not match")
	ErrSecretMissing = errors.New("webhook secret is required but not configured")
)

// VerifySecret rejects deliveries whose x-webhook-secret header differs from
// secret. An empty secret disables the check unless require is set, in which
// case every delivery is rejected.
func VerifySecret(secret string, require bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			if !require {
				return c.Next()
			}
			pterm.DefaultLogger.Warn(
				fmt.Sprintf("Rejected webhook from %s: no secret configured", c.IP()),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(
				common_model.NewApiError("Unauthorized", ErrSecretMissing, "webhook").Send(),
			)
		}

		given := c.Get(SecretHeader)
		if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			pterm.DefaultLogger.Warn(
				fmt.Sprintf("Rejected webhook from %s: invalid secret", c.IP()),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(
				common_model.NewApiError("Unauthorized", ErrInvalidSecret, "webhook").Send(),
			)
		}

		return c.Next()
	}
}
