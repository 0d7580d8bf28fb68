package credential_entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LawyerCredential is the API key the bot issued to a lawyer.
type LawyerCredential struct {
	ID               uuid.UUID `json:"id" gorm:"type:varchar(36);primaryKey"`
	LawyerIdentifier string    `json:"lawyer_identifier" gorm:"uniqueIndex:idx_lawyer_credentials_identifier;not null"`
	APIKey           string    `json:"-" gorm:"column:api_key;not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (c *LawyerCredential) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
