package env

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

const (
	StoreMemory   = "memory"
	StoreDatabase = "database"
	StoreRedis    = "redis"
)

var (
	CredentialStore string
	DatabaseDriver  string
	DatabaseURL     string
	RedisURL        string
	RedisKey        string

	MessageStoreEnabled bool
)

func loadStoreEnv() {
	CredentialStore = os.Getenv("CREDENTIAL_STORE")
	if CredentialStore == "" {
		CredentialStore = StoreMemory
	}

	DatabaseDriver = os.Getenv("DATABASE_DRIVER")
	if DatabaseDriver == "" {
		DatabaseDriver = "postgres"
	}
	DatabaseURL = os.Getenv("DATABASE_URL")

	RedisURL = os.Getenv("REDIS_URL")
	if RedisURL == "" {
		RedisURL = "redis://localhost:6379/0"
	}
	RedisKey = os.Getenv("REDIS_CREDENTIAL_KEY")
	if RedisKey == "" {
		RedisKey = "whatsapp:lawyer-api-keys"
	}

	MessageStoreEnabled = os.Getenv("MESSAGE_STORE_ENABLED") == "true"

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Credential store backend: %s", CredentialStore),
	)
	if MessageStoreEnabled {
		pterm.DefaultLogger.Info(
			fmt.Sprintf("Webhook messages will be stored using the %s driver", DatabaseDriver),
		)
	}
}

// DatabaseRequired reports whether any configured component needs a database connection.
func DatabaseRequired() bool {
	return CredentialStore == StoreDatabase || MessageStoreEnabled
}
