package credential_service

import "context"

// Store maps a lawyer identifier to the API key issued by the bot.
// Implementations must be safe for concurrent use.
type Store interface {
	// Register inserts or overwrites the key for lawyerIdentifier.
	Register(ctx context.Context, lawyerIdentifier, apiKey string) error
	// Lookup reports false when no key is registered.
	Lookup(ctx context.Context, lawyerIdentifier string) (string, bool, error)
}
