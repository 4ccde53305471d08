package rsvp

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mfdez/evermore/internal/party"
)

type companionSubmission struct {
	Attending           bool   `json:"attending"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	DietaryRestrictions string `json:"dietary_restrictions"`
}

type submission struct {
	InviteCode             string               `json:"invite_code"`
	Attending              bool                 `json:"attending"`
	DietaryRestrictions    string               `json:"dietary_restrictions"`
	Phone                  string               `json:"phone"`
	Whatsapp               string               `json:"whatsapp"`
	PreferredContactMethod string               `json:"preferred_contact_method"`
	MailingAddress         string               `json:"mailing_address"`
	Companion              *companionSubmission `json:"companion"`
}

// Submit applies an attendance decision to the submitter's party
func (r *Controller) Submit(c *fiber.Ctx) error {
	var form submission
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	code := form.InviteCode
	if code == "" {
		code = c.Cookies(InviteCodeCookieName)
	}

	decision := party.Decision{
		Attending:              form.Attending,
		DietaryRestrictions:    form.DietaryRestrictions,
		Phone:                  form.Phone,
		Whatsapp:               form.Whatsapp,
		PreferredContactMethod: form.PreferredContactMethod,
		MailingAddress:         form.MailingAddress,
	}
	if form.Companion != nil {
		decision.Companion = &party.CompanionDecision{
			Attending:           form.Companion.Attending,
			FirstName:           form.Companion.FirstName,
			LastName:            form.Companion.LastName,
			Email:               form.Companion.Email,
			Phone:               form.Companion.Phone,
			DietaryRestrictions: form.Companion.DietaryRestrictions,
		}
	}

	updated, err := r.engine.Submit(code, decision)
	switch {
	case errors.Is(err, party.ErrMissingInviteCode):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, party.ErrInvalidInviteCode), errors.Is(err, party.ErrPrimaryNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case err != nil:
		return fiber.ErrInternalServerError
	}

	return c.JSON(newPartyView(*updated))
}
