package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upWhatsAppMessages, downWhatsAppMessages)
}

func upWhatsAppMessages(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, "upWhatsAppMessages", []string{
		`CREATE TABLE IF NOT EXISTS whatsapp_messages (
			id VARCHAR(36) PRIMARY KEY,
			lawyer_id VARCHAR(64) NOT NULL,
			client_phone_number VARCHAR(32) NOT NULL,
			direction VARCHAR(16) NOT NULL,
			body TEXT NOT NULL,
			sent_at VARCHAR(64),
			created_at TIMESTAMP NOT NULL
		);`,

		// Conversation lookups are always scoped to a lawyer and a client
		`CREATE INDEX IF NOT EXISTS idx_whatsapp_messages_lawyer_client
		   ON whatsapp_messages(lawyer_id, client_phone_number);`,
	})
}

func downWhatsAppMessages(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, "downWhatsAppMessages", []string{
		`DROP TABLE IF EXISTS whatsapp_messages;`,
	})
}
