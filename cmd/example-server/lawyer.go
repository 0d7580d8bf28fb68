package main

import (
	"context"
	"fmt"
	"strings"

	credential_service "github.com/ainsongjog/whatsapp-bridge/src/credential/service"
	"golang.org/x/crypto/bcrypt"
)

// lawyerAccount is a static login. Only the password hash is kept.
type lawyerAccount struct {
	Email        string
	PasswordHash []byte
	APIKey       string
}

// parseLawyer reads an "email:password:apikey" flag value.
func parseLawyer(raw string, cost int) (lawyerAccount, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return lawyerAccount{}, fmt.Errorf("invalid lawyer %q, expected email:password:apikey", raw)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(parts[1]), cost)
	if err != nil {
		return lawyerAccount{}, fmt.Errorf("hash password of %s: %w", parts[0], err)
	}

	return lawyerAccount{
		Email:        strings.TrimSpace(parts[0]),
		PasswordHash: hash,
		APIKey:       parts[2],
	}, nil
}

type lawyerDirectory map[string]lawyerAccount

func newLawyerDirectory(ctx context.Context, raw []string, cost int, store credential_service.Store) (lawyerDirectory, error) {
	dir := make(lawyerDirectory, len(raw))
	for _, entry := range raw {
		account, err := parseLawyer(entry, cost)
		if err != nil {
			return nil, err
		}
		if err := store.Register(ctx, account.Email, account.APIKey); err != nil {
			return nil, err
		}
		dir[account.Email] = account
	}
	return dir, nil
}

func (d lawyerDirectory) authenticate(email, password string) bool {
	account, ok := d[email]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)) == nil
}
