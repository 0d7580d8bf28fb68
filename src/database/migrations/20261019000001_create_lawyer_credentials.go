package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
)

func init() {
	goose.AddMigrationContext(upLawyerCredentials, downLawyerCredentials)
}

func upLawyerCredentials(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS lawyer_credentials (
			id VARCHAR(36) PRIMARY KEY,
			lawyer_identifier VARCHAR(320) NOT NULL,
			api_key TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);`,

		// Upserts conflict on this column
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_lawyer_credentials_identifier
		   ON lawyer_credentials(lawyer_identifier);`,
	}

	return execAll(ctx, tx, "upLawyerCredentials", stmts)
}

func downLawyerCredentials(ctx context.Context, tx *sql.Tx) error {
	return execAll(ctx, tx, "downLawyerCredentials", []string{
		`DROP TABLE IF EXISTS lawyer_credentials;`,
	})
}

func execAll(ctx context.Context, tx *sql.Tx, name string, stmts []string) error {
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration %s failed on: %s\nerr: %v", name, s, err))
			return err
		}
	}

	pterm.DefaultLogger.Info(fmt.Sprintf("%s: %d statements executed", name, len(stmts)))
	return nil
}
