package main

import (
	"net/url"

	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
	"github.com/ainsongjog/whatsapp-bridge/src/validators"
	"github.com/gofiber/fiber/v2"
)

type addClientRequest struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Email       string `json:"email"`
}

type sendMessageRequest struct {
	ClientPhoneNumber string `json:"client_phone_number" validate:"required"`
	Text              string `json:"text" validate:"required_without=FilePath"`
	FilePath          string `json:"file_path" validate:"required_without=Text"`
}

type registerWebhookRequest struct {
	URL       string `json:"url" validate:"required"`
	EventType string `json:"event_type"`
}

func failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (a *exampleApp) profile(c *fiber.Ctx) error {
	result := a.proxy.GetProfile(c.UserContext(), auth_middleware.GetLawyer(c))
	if !result.Success {
		return failure(c, fiber.StatusInternalServerError, "Failed to get profile")
	}
	return c.JSON(result)
}

func (a *exampleApp) clients(c *fiber.Ctx) error {
	clients := a.proxy.GetLawyerClients(c.UserContext(), auth_middleware.GetLawyer(c))
	return c.JSON(fiber.Map{"clients": clients})
}

func (a *exampleApp) addClient(c *fiber.Ctx) error {
	var body addClientRequest
	if err := c.BodyParser(&body); err != nil || validators.Validator().Struct(&body) != nil {
		return failure(c, fiber.StatusBadRequest, "Name and phone number are required")
	}

	result := a.proxy.AddClient(c.UserContext(), auth_middleware.GetLawyer(c), whatsapp.NewClient{
		Name:        body.Name,
		PhoneNumber: body.PhoneNumber,
		Email:       body.Email,
	})
	if !result.Success {
		return failure(c, fiber.StatusInternalServerError, "Failed to add client")
	}
	return c.JSON(result)
}

func (a *exampleApp) conversation(c *fiber.Ctx) error {
	phoneNumber, err := url.PathUnescape(c.Params("phoneNumber"))
	if err != nil {
		return failure(c, fiber.StatusBadRequest, "Invalid phone number")
	}

	history := a.proxy.GetConversationHistory(
		c.UserContext(),
		auth_middleware.GetLawyer(c),
		phoneNumber,
		c.QueryInt("count", whatsapp.DefaultConversationCount),
	)
	return c.JSON(history)
}

func (a *exampleApp) sendMessage(c *fiber.Ctx) error {
	var body sendMessageRequest
	if err := c.BodyParser(&body); err != nil || validators.Validator().Struct(&body) != nil {
		return failure(c, fiber.StatusBadRequest, "client_phone_number and either text or file_path are required")
	}

	result := a.proxy.SendMessage(c.UserContext(), auth_middleware.GetLawyer(c), whatsapp.OutboundMessage{
		ClientPhoneNumber: body.ClientPhoneNumber,
		Text:              body.Text,
		FilePath:          body.FilePath,
	})
	if !result.Success {
		return failure(c, fiber.StatusInternalServerError, "Failed to send message")
	}
	return c.JSON(result)
}

func (a *exampleApp) registerWebhook(c *fiber.Ctx) error {
	var body registerWebhookRequest
	if err := c.BodyParser(&body); err != nil || validators.Validator().Struct(&body) != nil {
		return failure(c, fiber.StatusBadRequest, "Webhook URL is required")
	}

	eventType := body.EventType
	if eventType == "" {
		eventType = whatsapp.EventMessageReceived
	}

	result := a.proxy.RegisterWebhook(c.UserContext(), auth_middleware.GetLawyer(c), body.URL, eventType)
	if !result.Success {
		return failure(c, fiber.StatusInternalServerError, "Failed to register webhook")
	}
	return c.JSON(result)
}

func (a *exampleApp) webhooks(c *fiber.Ctx) error {
	webhooks := a.proxy.ListWebhooks(c.UserContext(), auth_middleware.GetLawyer(c))
	return c.JSON(fiber.Map{"webhooks": webhooks})
}
