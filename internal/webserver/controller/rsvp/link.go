package rsvp

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mfdez/evermore/internal/party"
	"github.com/mfdez/evermore/internal/webserver/jwtclaimsreader"
)

// Link binds the authenticated identity to the party behind an invite code.
// Invoked right after sign-in completes on an RSVP deep link.
func (r *Controller) Link(c *fiber.Ctx) error {
	var form struct {
		InviteCode string `json:"invite_code"`
	}
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	var (
		subjectID string
		emails    []string
	)
	if identity := jwtclaimsreader.Identity(c); identity != nil {
		subjectID = identity.SubjectID
		emails = identity.Emails
	}

	linked, err := r.linker.Link(subjectID, emails, form.InviteCode)
	switch {
	case errors.Is(err, party.ErrNotAuthenticated):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, party.ErrInvalidInviteCode):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, party.ErrAlreadyLinked):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case err != nil:
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"linked": newGuestView(*linked),
	})
}
