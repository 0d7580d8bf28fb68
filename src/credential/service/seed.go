package credential_service

import (
	"context"
	"fmt"
	"strings"
)

// ParseSeed reads "email=key,email=key" pairs. Blank entries are skipped.
func ParseSeed(raw string) (map[string]string, error) {
	pairs := make(map[string]string)

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		lawyer, key, ok := strings.Cut(entry, "=")
		lawyer, key = strings.TrimSpace(lawyer), strings.TrimSpace(key)
		if !ok || lawyer == "" || key == "" {
			return nil, fmt.Errorf("invalid credential entry %q, expected lawyer=key", entry)
		}
		pairs[lawyer] = key
	}

	return pairs, nil
}

func Seed(ctx context.Context, store Store, pairs map[string]string) error {
	for lawyer, key := range pairs {
		if err := store.Register(ctx, lawyer, key); err != nil {
			return fmt.Errorf("seed credential for %s: %w", lawyer, err)
		}
	}
	return nil
}
