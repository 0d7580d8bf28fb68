package message_entity

import (
	"time"

	message_model "github.com/ainsongjog/whatsapp-bridge/src/message/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WhatsAppMessage is a message reported by the bot webhook. LawyerID is the
// bot's identifier, SentAt the bot's timestamp as received.
type WhatsAppMessage struct {
	ID                uuid.UUID               `json:"id" gorm:"type:varchar(36);primaryKey"`
	LawyerID          string                  `json:"lawyer_id" gorm:"not null"`
	ClientPhoneNumber string                  `json:"client_phone_number" gorm:"not null"`
	Direction         message_model.Direction `json:"direction" gorm:"not null"`
	Body              string                  `json:"body" gorm:"not null"`
	SentAt            string                  `json:"sent_at"`
	CreatedAt         time.Time               `json:"created_at"`
}

func (WhatsAppMessage) TableName() string {
	return "whatsapp_messages"
}

func (m *WhatsAppMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
