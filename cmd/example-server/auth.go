package main

import (
	"fmt"

	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *exampleApp) login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if !a.lawyers.authenticate(body.Email, body.Password) {
		pterm.DefaultLogger.Warn(fmt.Sprintf("Failed login for %s from %s", body.Email, c.IP()))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
	}

	sess, err := a.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}
	// A fresh session id on login
	if err := sess.Regenerate(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}
	sess.Set(sessionLawyerKey, body.Email)
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Logged in successfully"})
}

func (a *exampleApp) logout(c *fiber.Ctx) error {
	sess, err := a.sessions.Get(c)
	if err == nil {
		err = sess.Destroy()
	}
	if err != nil {
		pterm.DefaultLogger.Warn(fmt.Sprintf("Error destroying session: %s", err))
	}
	return c.JSON(fiber.Map{"success": true, "message": "Logged out successfully"})
}

func (a *exampleApp) requireAuth(c *fiber.Ctx) error {
	sess, err := a.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	email, ok := sess.Get(sessionLawyerKey).(string)
	if !ok || email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	c.Locals(auth_middleware.LawyerCtxKey, email)
	return c.Next()
}
