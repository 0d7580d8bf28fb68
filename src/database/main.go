package database

import (
	"fmt"

	"github.com/ainsongjog/whatsapp-bridge/src/config/env"
	"github.com/pterm/pterm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var DB *gorm.DB

// Load connects DB using the configured driver and DSN.
func Load() error {
	pterm.DefaultLogger.Info(
		fmt.Sprintf("Connecting to %s database...", env.DatabaseDriver),
	)

	db, err := Open(env.DatabaseDriver, env.DatabaseURL)
	if err != nil {
		return err
	}
	DB = db

	pterm.DefaultLogger.Info("Database connected")
	return nil
}

func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	return db, nil
}
