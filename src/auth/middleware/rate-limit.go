package auth_middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// CredentialRateLimiter limits API key registrations per lawyer. Must run
// after the lawyer middleware.
var CredentialRateLimiter = limiter.New(limiter.Config{
	Max:        10,
	Expiration: 1 * time.Hour,
	KeyGenerator: func(c *fiber.Ctx) string {
		return "credential:" + GetLawyer(c)
	},
	LimitReached: func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":   "Too many credential updates",
			"message": "Please try again later",
		})
	},
})

// LoginRateLimiter limits login attempts per IP + email
var LoginRateLimiter = limiter.New(limiter.Config{
	Max:        10,
	Expiration: 15 * time.Minute,
	KeyGenerator: func(c *fiber.Ctx) string {
		// Parse body to get email for rate limiting
		var body struct {
			Email string `json:"email"`
		}
		if err := c.BodyParser(&body); err == nil && body.Email != "" {
			return "login:" + c.IP() + ":" + body.Email
		}
		return "login:" + c.IP()
	},
	LimitReached: func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":   "Too many login attempts",
			"message": "Please try again later",
		})
	},
})
