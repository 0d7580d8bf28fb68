package server

import (
	"context"
	"fmt"

	"github.com/ainsongjog/whatsapp-bridge/src/config/env"
	credential_service "github.com/ainsongjog/whatsapp-bridge/src/credential/service"
	"github.com/ainsongjog/whatsapp-bridge/src/database"
	"github.com/pterm/pterm"
	"github.com/redis/go-redis/v9"
)

// loadStore builds the configured credential store and seeds it from
// WHATSAPP_LAWYER_KEYS. The returned func releases its connections.
func loadStore(ctx context.Context) (credential_service.Store, func(), error) {
	var store credential_service.Store
	closer := func() {}

	switch env.CredentialStore {
	case env.StoreMemory:
		store = credential_service.NewMemoryStore()
	case env.StoreDatabase:
		store = credential_service.NewDatabaseStore(database.DB)
	case env.StoreRedis:
		opts, err := redis.ParseURL(env.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		store = credential_service.NewRedisStore(client, env.RedisKey)
		closer = func() {
			if err := client.Close(); err != nil {
				pterm.DefaultLogger.Warn(fmt.Sprintf("Error closing redis client: %s", err))
			}
		}
	default:
		return nil, nil, fmt.Errorf("unknown credential store %q", env.CredentialStore)
	}

	pairs, err := credential_service.ParseSeed(env.LawyerKeys)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("parse WHATSAPP_LAWYER_KEYS: %w", err)
	}
	if err := credential_service.Seed(ctx, store, pairs); err != nil {
		closer()
		return nil, nil, err
	}
	if len(pairs) > 0 {
		pterm.DefaultLogger.Info(fmt.Sprintf("Seeded %d lawyer API keys", len(pairs)))
	}

	return store, closer, nil
}
