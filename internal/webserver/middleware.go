package webserver

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/mfdez/evermore/internal/party"
	"github.com/mfdez/evermore/internal/webserver/jwtclaimsreader"
)

// SessionCookieName holds the JWT issued by the auth provider
const SessionCookieName = "evermore"

// Identity verifies the session cookie when present. Anonymous requests pass
// through untouched; identity is optional on every public route.
func Identity(jwtSecret []byte) func(*fiber.Ctx) error {
	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "cookie:" + SessionCookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}

// RequireAdmin returns unauthorized for anonymous requests and forbidden for
// identities whose emails are not on the admin allow-list
func RequireAdmin(admins party.AdminAllowList) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		identity := jwtclaimsreader.Identity(c)
		if identity == nil {
			return fiber.ErrUnauthorized
		}
		if !admins.Allows(identity.Emails) {
			return fiber.ErrForbidden
		}
		return c.Next()
	}
}
