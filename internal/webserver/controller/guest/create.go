package guest

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mfdez/evermore/internal/model"
	"github.com/mfdez/evermore/internal/party"
)

type guestForm struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	CompanionAllowed bool   `json:"companion_allowed"`
	Under21          bool   `json:"under_21"`
	Family           string `json:"family"`
	Side             string `json:"side"`
	List             string `json:"list"`
	// PrimaryUuid, when set, creates the guest as the companion of that
	// primary guest instead of issuing a new invite code
	PrimaryUuid string `json:"primary_uuid"`
}

// Create adds a guest. Primary guests get a freshly generated unique invite
// code; companions share their primary's code.
func (g *Controller) Create(c *fiber.Ctx) error {
	var form guestForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	guest := model.Guest{
		Uuid:             uuid.NewString(),
		FirstName:        form.FirstName,
		LastName:         form.LastName,
		Email:            form.Email,
		CompanionAllowed: form.CompanionAllowed,
		Under21:          form.Under21,
		Family:           form.Family,
		Side:             form.Side,
		List:             form.List,
		RSVPStatus:       model.RSVPPending,
	}

	if form.PrimaryUuid != "" {
		primary, err := g.repository.FindByUuid(form.PrimaryUuid)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		if primary == nil || primary.IsCompanion {
			return fiber.NewError(fiber.StatusBadRequest, "primary guest not found")
		}
		if !primary.CompanionAllowed {
			return fiber.NewError(fiber.StatusBadRequest, "primary guest has no plus-one allowance")
		}
		guest.IsCompanion = true
		guest.PrimaryGuestID = &primary.ID
		guest.InviteCode = primary.InviteCode
		guest.CompanionAllowed = false
		guest.Family = primary.Family
		guest.Side = primary.Side
		guest.List = primary.List
	} else {
		code, err := party.NewUniqueCode(g.repository)
		if errors.Is(err, party.ErrCodeSpaceExhausted) {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if err != nil {
			return fiber.ErrInternalServerError
		}
		guest.InviteCode = code
	}

	if errs := guest.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if err := g.repository.Create(&guest); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(newGuestView(guest))
}
