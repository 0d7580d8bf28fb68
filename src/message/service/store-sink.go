package message_service

import (
	"context"
	"fmt"

	message_entity "github.com/ainsongjog/whatsapp-bridge/src/message/entity"
	message_model "github.com/ainsongjog/whatsapp-bridge/src/message/model"
	webhook_in_service "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/service"
	"gorm.io/gorm"
)

// StoreSink persists webhook events to whatsapp_messages.
type StoreSink struct {
	db *gorm.DB
}

func NewStoreSink(db *gorm.DB) *StoreSink {
	return &StoreSink{db: db}
}

func (s *StoreSink) OnIncomingMessage(ctx context.Context, event webhook_in_service.MessageEvent) error {
	return s.save(ctx, message_model.Incoming, event)
}

func (s *StoreSink) OnMessageSent(ctx context.Context, event webhook_in_service.MessageEvent) error {
	return s.save(ctx, message_model.Outgoing, event)
}

func (s *StoreSink) save(ctx context.Context, direction message_model.Direction, event webhook_in_service.MessageEvent) error {
	msg := message_entity.WhatsAppMessage{
		LawyerID:          event.LawyerID,
		ClientPhoneNumber: event.ClientPhoneNumber,
		Direction:         direction,
		Body:              event.Message,
		SentAt:            event.Timestamp,
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return fmt.Errorf("store %s message: %w", direction, err)
	}
	return nil
}
