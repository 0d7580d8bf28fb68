package auth_middleware

import (
	"errors"
	"fmt"
	"strings"

	common_model "github.com/ainsongjog/whatsapp-bridge/src/common/model"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// LawyerCtxKey stores the caller's lawyer identifier.
const LawyerCtxKey = "lawyer"

const LawyerHeader = "X-Lawyer-Email"

// LawyerClaims is the token shape issued by the host identity system.
type LawyerClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewLawyerMiddleware resolves who is calling. With a secret it requires an
// HS256 bearer token carrying an email claim; without one it trusts the
// X-Lawyer-Email header. No authorization is performed here.
func NewLawyerMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var lawyer string
		var err error
		if jwtSecret != "" {
			lawyer, err = lawyerFromToken(c.Get(fiber.HeaderAuthorization), jwtSecret)
		} else {
			lawyer = strings.TrimSpace(c.Get(LawyerHeader))
			if lawyer == "" {
				err = fmt.Errorf("%s header is required", LawyerHeader)
			}
		}

		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(
				common_model.NewApiError("Not authenticated", err, "middleware").Send(),
			)
		}

		c.Locals(LawyerCtxKey, lawyer)
		return c.Next()
	}
}

func lawyerFromToken(header, secret string) (string, error) {
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return "", errors.New("bearer token is required")
	}

	claims := &LawyerClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	if claims.Email == "" {
		return "", errors.New("token has no email claim")
	}
	return claims.Email, nil
}

// GetLawyer returns the identifier stored by the lawyer middleware.
func GetLawyer(c *fiber.Ctx) string {
	lawyer, _ := c.Locals(LawyerCtxKey).(string)
	return lawyer
}
