package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ainsongjog/whatsapp-bridge/src/config/env"
	"github.com/ainsongjog/whatsapp-bridge/src/database"
	database_migrate "github.com/ainsongjog/whatsapp-bridge/src/database/migrate"
	"github.com/ainsongjog/whatsapp-bridge/src/server"
	"github.com/pterm/pterm"
)

// @title						WhatsApp Bridge API
// @version					0.1.0
// @description				Bridges a lawyer-facing backend to the WhatsApp bot service. Proxies lawyer requests to the bot and receives its message webhooks.
// @license.name				MIT
// @license.url				https://opensource.org/licenses/MIT
// @BasePath					/
// @schemes					http https
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						Authorization
func main() {
	// Check for CLI commands
	if len(os.Args) > 1 {
		command := os.Args[1]

		switch command {
		case "migrate:up":
			runMigration(func(ctx context.Context) error {
				return database_migrate.Up(ctx, database.DB, env.DatabaseDriver)
			})
			return
		case "migrate:down":
			runMigration(func(ctx context.Context) error {
				return database_migrate.Down(ctx, database.DB, env.DatabaseDriver)
			})
			return
		case "migrate:status":
			runMigration(func(ctx context.Context) error {
				return database_migrate.Status(ctx, database.DB, env.DatabaseDriver)
			})
			return
		case "migrate:down-to":
			if len(os.Args) < 3 {
				pterm.DefaultLogger.Error("Usage: ./whatsapp-bridge migrate:down-to <version>")
				os.Exit(1)
			}
			version, err := strconv.ParseInt(os.Args[2], 10, 64)
			if err != nil {
				pterm.DefaultLogger.Error(fmt.Sprintf("Invalid version format: %s", os.Args[2]))
				os.Exit(1)
			}
			runMigration(func(ctx context.Context) error {
				return database_migrate.DownTo(ctx, database.DB, env.DatabaseDriver, version)
			})
			return
		default:
			pterm.DefaultLogger.Error(fmt.Sprintf("Unknown command: %s", command))
			pterm.DefaultLogger.Info("Available commands: migrate:up, migrate:down, migrate:status, migrate:down-to <version>")
			os.Exit(1)
		}
	}

	if err := server.Serve(); err != nil {
		pterm.DefaultLogger.Fatal(fmt.Sprintf("%v", err))
	}
}

func runMigration(run func(ctx context.Context) error) {
	if err := database.Load(); err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Failed to connect to database: %s", err))
		os.Exit(1)
	}

	if err := run(context.Background()); err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Migration command failed: %s", err))
		os.Exit(1)
	}
}
