package guest

import (
	"github.com/gofiber/fiber/v2"
)

type guestUpdateForm struct {
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Email                  string  `json:"email"`
	CompanionAllowed       bool    `json:"companion_allowed"`
	Under21                bool    `json:"under_21"`
	Family                 string  `json:"family"`
	Side                   string  `json:"side"`
	List                   string  `json:"list"`
	Phone                  *string `json:"phone"`
	Whatsapp               *string `json:"whatsapp"`
	PreferredContactMethod *string `json:"preferred_contact_method"`
	MailingAddress         *string `json:"mailing_address"`
	DietaryRestrictions    *string `json:"dietary_restrictions"`
	RSVPStatus             string  `json:"rsvp_status"`
}

// Update edits a guest record from the admin form
func (g *Controller) Update(c *fiber.Ctx) error {
	guest, err := g.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if guest == nil {
		return fiber.ErrNotFound
	}

	form := guestUpdateForm{RSVPStatus: guest.RSVPStatus}
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	guest.FirstName = form.FirstName
	guest.LastName = form.LastName
	guest.Email = form.Email
	guest.Under21 = form.Under21
	guest.Family = form.Family
	guest.Side = form.Side
	guest.List = form.List
	guest.Phone = form.Phone
	guest.Whatsapp = form.Whatsapp
	guest.PreferredContactMethod = form.PreferredContactMethod
	guest.MailingAddress = form.MailingAddress
	guest.DietaryRestrictions = form.DietaryRestrictions
	guest.RSVPStatus = form.RSVPStatus
	if !guest.IsCompanion {
		guest.CompanionAllowed = form.CompanionAllowed
	}

	if errs := guest.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if err := g.repository.Update(guest); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(newGuestView(*guest))
}
