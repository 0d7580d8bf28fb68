package env

import (
	"os"

	"github.com/pterm/pterm"
)

// JWTSecret verifies bearer tokens issued by the host identity system. When
// empty the caller identity is read from the X-Lawyer-Email header.
var JWTSecret string

// CredentialsTrustHeader mounts PUT /whatsapp/credentials even when the
// caller identity comes from the unauthenticated X-Lawyer-Email header.
var CredentialsTrustHeader bool

func loadAuthEnv() {
	JWTSecret = os.Getenv("JWT_SECRET")
	CredentialsTrustHeader = os.Getenv("CREDENTIALS_TRUST_HEADER") == "true"

	if JWTSecret == "" {
		pterm.DefaultLogger.Warn("JWT_SECRET not set, lawyer identity is taken from the X-Lawyer-Email header")
	}
}
