package event

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfdez/evermore/internal/model"
	"github.com/mfdez/evermore/internal/webserver/controller/rsvp"
	"github.com/mfdez/evermore/internal/webserver/jwtclaimsreader"
)

// List returns the events visible to the visitor: default events plus the
// ones their party has been invited to
func (e *Controller) List(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		code = c.Cookies(rsvp.InviteCodeCookieName)
	}

	resolved, err := e.resolver.Resolve(code, jwtclaimsreader.Identity(c))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	events, err := e.events.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	invited := map[uint]struct{}{}
	if resolved != nil {
		guestIDs := []uint{resolved.Primary.ID}
		if resolved.Companion != nil {
			guestIDs = append(guestIDs, resolved.Companion.ID)
		}
		for _, guestID := range guestIDs {
			invites, err := e.invites.ListByGuest(guestID)
			if err != nil {
				return fiber.ErrInternalServerError
			}
			for _, invite := range invites {
				invited[invite.EventID] = struct{}{}
			}
		}
	}

	visible := make([]model.Event, 0, len(events))
	for _, event := range events {
		if event.IsDefault {
			visible = append(visible, event)
			continue
		}
		if _, ok := invited[event.ID]; ok {
			visible = append(visible, event)
		}
	}

	return c.JSON(fiber.Map{
		"events": newEventViews(visible),
	})
}

// ListAll returns every event, for the admin back office
func (e *Controller) ListAll(c *fiber.Ctx) error {
	events, err := e.events.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"events": newEventViews(events),
	})
}
