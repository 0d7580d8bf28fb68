package webhook_in_service

import (
	"context"
	"errors"
	"fmt"

	webhook_in_model "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/model"
)

var ErrMissingData = errors.New("webhook event has no data")

// Dispatch routes event to the matching sink method. Unknown event types are
// ignored and reported as not dispatched.
func Dispatch(ctx context.Context, sink EventSink, event webhook_in_model.WebhookEvent) (bool, error) {
	var call func(context.Context, MessageEvent) error
	switch event.EventType {
	case webhook_in_model.MessageReceived:
		call = sink.OnIncomingMessage
	case webhook_in_model.MessageSent:
		call = sink.OnMessageSent
	default:
		return false, nil
	}

	if event.Data == nil {
		return false, fmt.Errorf("%s: %w", event.EventType, ErrMissingData)
	}

	return true, call(ctx, MessageEvent{
		LawyerID:          event.LawyerID.String(),
		ClientPhoneNumber: event.Data.ClientPhoneNumber,
		Message:           event.Data.Message,
		Timestamp:         event.Data.Timestamp,
	})
}
