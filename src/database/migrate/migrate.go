package database_migrate

import (
	"context"
	"fmt"

	"github.com/ainsongjog/whatsapp-bridge/src/database"
	_ "github.com/ainsongjog/whatsapp-bridge/src/database/migrations"
	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
	"gorm.io/gorm"
)

// NewProvider builds a goose provider over the Go migrations registered by
// the migrations package.
func NewProvider(db *gorm.DB, driver string) (*goose.Provider, error) {
	var dialect goose.Dialect
	switch driver {
	case database.DriverPostgres:
		dialect = goose.DialectPostgres
	case database.DriverSQLite:
		dialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("no goose dialect for driver %q", driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database connection: %w", err)
	}

	return goose.NewProvider(dialect, sqlDB, nil)
}

// Up applies every pending migration.
func Up(ctx context.Context, db *gorm.DB, driver string) error {
	pterm.DefaultLogger.Info("Executing goose migrations...")

	provider, err := NewProvider(db, driver)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("execute goose migrations: %w", err)
	}
	for _, result := range results {
		pterm.DefaultLogger.Info(
			fmt.Sprintf("Applied migration %d in %s", result.Source.Version, result.Duration),
		)
	}

	pterm.DefaultLogger.Info("Goose migrations executed")
	return nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *gorm.DB, driver string) error {
	provider, err := NewProvider(db, driver)
	if err != nil {
		return err
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("roll back migration: %w", err)
	}
	pterm.DefaultLogger.Info(
		fmt.Sprintf("Rolled back migration %d", result.Source.Version),
	)
	return nil
}

// DownTo rolls back every migration newer than version.
func DownTo(ctx context.Context, db *gorm.DB, driver string, version int64) error {
	provider, err := NewProvider(db, driver)
	if err != nil {
		return err
	}

	if _, err := provider.DownTo(ctx, version); err != nil {
		return fmt.Errorf("roll back to version %d: %w", version, err)
	}
	return nil
}

// Status logs the state of every known migration.
func Status(ctx context.Context, db *gorm.DB, driver string) error {
	provider, err := NewProvider(db, driver)
	if err != nil {
		return err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("check migration status: %w", err)
	}
	for _, status := range statuses {
		pterm.DefaultLogger.Info(
			fmt.Sprintf("%d %s", status.Source.Version, status.State),
		)
	}
	return nil
}
