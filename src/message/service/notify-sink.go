package message_service

import (
	"context"
	"fmt"

	message_model "github.com/ainsongjog/whatsapp-bridge/src/message/model"
	webhook_in_service "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/service"
	websocket_lawyer_manager "github.com/ainsongjog/whatsapp-bridge/src/websocket/lawyer-manager"
	"github.com/pterm/pterm"
)

// NotifySink pushes webhook events to the lawyer's websocket subscribers.
type NotifySink struct {
	manager *websocket_lawyer_manager.LawyerChannelManager[message_model.Notification]
}

func NewNotifySink(manager *websocket_lawyer_manager.LawyerChannelManager[message_model.Notification]) *NotifySink {
	return &NotifySink{manager: manager}
}

func (s *NotifySink) OnIncomingMessage(_ context.Context, event webhook_in_service.MessageEvent) error {
	s.notify(message_model.Incoming, event)
	return nil
}

func (s *NotifySink) OnMessageSent(_ context.Context, event webhook_in_service.MessageEvent) error {
	s.notify(message_model.Outgoing, event)
	return nil
}

func (s *NotifySink) notify(direction message_model.Direction, event webhook_in_service.MessageEvent) {
	delivered := s.manager.Broadcast(event.LawyerID, message_model.Notification{
		Direction:         direction,
		LawyerID:          event.LawyerID,
		ClientPhoneNumber: event.ClientPhoneNumber,
		Message:           event.Message,
		Timestamp:         event.Timestamp,
	})
	if delivered > 0 {
		pterm.DefaultLogger.Debug(
			fmt.Sprintf("Notified %d websocket clients of lawyer %s", delivered, event.LawyerID),
		)
	}
}
