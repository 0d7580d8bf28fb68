package webhook_in_handler

import (
	"fmt"

	common_model "github.com/ainsongjog/whatsapp-bridge/src/common/model"
	webhook_in_model "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/model"
	webhook_in_service "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/service"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

const processingFailedMessage = "Failed to process webhook"

type Ack struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Receiver decodes bot deliveries and hands them to a sink.
type Receiver struct {
	Sink webhook_in_service.EventSink
}

func NewReceiver(sink webhook_in_service.EventSink) *Receiver {
	return &Receiver{Sink: sink}
}

// Handle receives a bot event.
//
//	@Summary		Receive bot event
//	@Description	Receives message_received and message_sent events from the WhatsApp bot. Other event types are acknowledged and ignored.
//	@Tags			Webhook In
//	@Accept			json
//	@Produce		json
//	@Param			x-webhook-secret	header		string							false	"Shared secret"
//	@Param			event				body		webhook_in_model.WebhookEvent	true	"Bot event"
//	@Success		200					{object}	Ack								"Acknowledged"
//	@Failure		400					{object}	common_model.DescriptiveError	"Invalid body"
//	@Failure		401					{object}	common_model.DescriptiveError	"Invalid secret"
//	@Router			/webhooks/whatsapp [post]
func (r *Receiver) Handle(c *fiber.Ctx) error {
	var event webhook_in_model.WebhookEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	dispatched, err := webhook_in_service.Dispatch(c.UserContext(), r.Sink, event)
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Error processing %s webhook for lawyer %s: %s", event.EventType, event.LawyerID, err.Error()),
		)
		return c.Status(fiber.StatusOK).JSON(Ack{Status: "error", Message: processingFailedMessage})
	}
	if !dispatched {
		pterm.DefaultLogger.Debug(fmt.Sprintf("Ignoring webhook event %q", event.EventType))
	}

	return c.Status(fiber.StatusOK).JSON(Ack{Status: "ok"})
}
