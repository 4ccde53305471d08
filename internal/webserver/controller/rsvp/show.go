package rsvp

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mfdez/evermore/internal/party"
	"github.com/mfdez/evermore/internal/webserver/jwtclaimsreader"
)

// Show resolves the visitor's party from the invite code in the query
// string or cookie, or from their authenticated identity
func (r *Controller) Show(c *fiber.Ctx) error {
	identity := jwtclaimsreader.Identity(c)

	code := c.Query("code")
	if code == "" {
		code = c.Cookies(InviteCodeCookieName)
	}

	// Too-short manual entries are rejected before touching the store,
	// unless an identity can resolve the party on its own
	if code != "" && identity == nil && !party.PlausibleCode(code) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid invite code")
	}

	resolved, err := r.resolver.Resolve(code, identity)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if resolved == nil {
		return fiber.ErrNotFound
	}

	c.Cookie(&fiber.Cookie{
		Name:     InviteCodeCookieName,
		Value:    resolved.InviteCode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(newPartyView(*resolved))
}
