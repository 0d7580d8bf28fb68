package credential_service

import (
	"context"
	"errors"
	"fmt"

	credential_entity "github.com/ainsongjog/whatsapp-bridge/src/credential/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DatabaseStore keeps credentials in the lawyer_credentials table.
type DatabaseStore struct {
	db *gorm.DB
}

func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) Register(ctx context.Context, lawyerIdentifier, apiKey string) error {
	credential := credential_entity.LawyerCredential{
		LawyerIdentifier: lawyerIdentifier,
		APIKey:           apiKey,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lawyer_identifier"}},
			DoUpdates: clause.AssignmentColumns([]string{"api_key", "updated_at"}),
		}).
		Create(&credential).Error
	if err != nil {
		return fmt.Errorf("upsert credential: %w", err)
	}
	return nil
}

func (s *DatabaseStore) Lookup(ctx context.Context, lawyerIdentifier string) (string, bool, error) {
	var credential credential_entity.LawyerCredential

	err := s.db.WithContext(ctx).
		Where("lawyer_identifier = ?", lawyerIdentifier).
		First(&credential).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("find credential: %w", err)
	}
	return credential.APIKey, true, nil
}
