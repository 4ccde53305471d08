package event

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfdez/evermore/internal/model"
	"github.com/mfdez/evermore/internal/party"
	"github.com/mfdez/evermore/internal/webserver/controller/rsvp"
	"github.com/mfdez/evermore/internal/webserver/jwtclaimsreader"
)

// ShowRSVP returns the per-event attendance of the visitor's party. Each
// party member responds individually; there is no companion cascade here.
func (e *Controller) ShowRSVP(c *fiber.Ctx) error {
	event, resolved, err := e.eventAndParty(c)
	if err != nil {
		return err
	}

	members := []model.Guest{resolved.Primary}
	if resolved.Companion != nil {
		members = append(members, *resolved.Companion)
	}

	views := make([]inviteView, 0, len(members))
	for _, member := range members {
		invite, err := e.invites.FindByEventAndGuest(event.ID, member.ID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		switch {
		case invite != nil:
			views = append(views, newInviteView(member.Uuid, *invite))
		case event.IsDefault:
			// Implicitly invited, no row until they respond
			views = append(views, inviteView{GuestUuid: member.Uuid, RSVPStatus: model.RSVPPending})
		}
	}

	return c.JSON(fiber.Map{
		"event":   newEventView(*event),
		"invites": views,
	})
}

// SubmitRSVP stores one party member's attendance for a single event
func (e *Controller) SubmitRSVP(c *fiber.Ctx) error {
	var form struct {
		InviteCode string `json:"invite_code"`
		GuestUuid  string `json:"guest_uuid"`
		Attending  bool   `json:"attending"`
	}
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	event, resolved, err := e.eventAndPartyWithCode(c, form.InviteCode)
	if err != nil {
		return err
	}

	// The respondent must belong to the resolved party; it defaults to the
	// primary guest
	respondent := resolved.Primary
	if form.GuestUuid != "" && form.GuestUuid != resolved.Primary.Uuid {
		if resolved.Companion == nil || form.GuestUuid != resolved.Companion.Uuid {
			return fiber.NewError(fiber.StatusBadRequest, "guest does not belong to this party")
		}
		respondent = *resolved.Companion
	}

	invite, err := e.invites.FindByEventAndGuest(event.ID, respondent.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if invite == nil && !event.IsDefault {
		return fiber.NewError(fiber.StatusNotFound, "guest is not invited to this event")
	}

	status := model.RSVPNo
	if form.Attending {
		status = model.RSVPYes
	}

	if invite == nil {
		invite = &model.EventInvite{
			EventID:    event.ID,
			GuestID:    respondent.ID,
			RSVPStatus: status,
		}
		if err := e.invites.Create(invite); err != nil {
			return fiber.ErrInternalServerError
		}
	} else {
		invite.RSVPStatus = status
		if err := e.invites.Update(invite); err != nil {
			return fiber.ErrInternalServerError
		}
	}

	return c.JSON(newInviteView(respondent.Uuid, *invite))
}

func (e *Controller) eventAndParty(c *fiber.Ctx) (*model.Event, *party.Party, error) {
	return e.eventAndPartyWithCode(c, c.Query("code"))
}

func (e *Controller) eventAndPartyWithCode(c *fiber.Ctx, code string) (*model.Event, *party.Party, error) {
	event, err := e.events.FindByUuid(c.Params("uuid"))
	if err != nil {
		return nil, nil, fiber.ErrInternalServerError
	}
	if event == nil {
		return nil, nil, fiber.ErrNotFound
	}

	if code == "" {
		code = c.Cookies(rsvp.InviteCodeCookieName)
	}

	resolved, err := e.resolver.Resolve(code, jwtclaimsreader.Identity(c))
	if err != nil {
		return nil, nil, fiber.ErrInternalServerError
	}
	if resolved == nil {
		return nil, nil, fiber.ErrNotFound
	}

	return event, resolved, nil
}
