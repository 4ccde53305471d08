// Package jwtclaimsreader converts the JWT session cookie issued by the auth
// provider into the identity view the rest of the application works with.
package jwtclaimsreader

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mfdez/evermore/internal/party"
)

// Identity returns the authenticated identity attached to the request, or
// nil for anonymous visitors
func Identity(c *fiber.Ctx) *party.Identity {
	t, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil
	}

	identity := &party.Identity{SubjectID: subject}
	if emails, ok := claims["emails"].([]interface{}); ok {
		for _, email := range emails {
			if value, ok := email.(string); ok {
				identity.Emails = append(identity.Emails, value)
			}
		}
	}
	return identity
}

// GenerateToken signs a session token for the given identity. The production
// token is minted by the auth provider sharing the same secret; this is used
// on its callback path and in tests.
func GenerateToken(identity *party.Identity, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    identity.SubjectID,
		"emails": identity.Emails,
		"exp":    jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}
