package event

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mfdez/evermore/internal/infrastructure"
	"github.com/mfdez/evermore/internal/model"
)

var inviteEmailTemplate = template.Must(template.New("event-invite").Parse(`
<p>Dear {{.GuestName}},</p>
<p>You are invited to <strong>{{.EventName}}</strong>{{if .Location}} at {{.Location}}{{end}}{{if .Date}} on {{.Date}}{{end}}.</p>
<p>Please let us know if you can make it: <a href="{{.Link}}">{{.Link}}</a></p>
`))

// ListInvites returns the invite rows of an event
func (e *Controller) ListInvites(c *fiber.Ctx) error {
	event, err := e.events.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if event == nil {
		return fiber.ErrNotFound
	}

	invites, err := e.invites.ListByEvent(event.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	views := make([]inviteView, 0, len(invites))
	for _, invite := range invites {
		guest, err := e.guests.FindByID(invite.GuestID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		guestUuid := ""
		if guest != nil {
			guestUuid = guest.Uuid
		}
		views = append(views, newInviteView(guestUuid, invite))
	}

	return c.JSON(fiber.Map{
		"event":   newEventView(*event),
		"invites": views,
	})
}

// AddInvite invites a guest to an event. Default events implicitly invite
// every guest, so their invite rows cannot be managed by hand.
func (e *Controller) AddInvite(c *fiber.Ctx) error {
	event, guest, err := e.eventAndGuest(c)
	if err != nil {
		return err
	}
	if event.IsDefault {
		return fiber.NewError(fiber.StatusBadRequest, "default events invite every guest")
	}

	existing, err := e.invites.FindByEventAndGuest(event.ID, guest.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if existing != nil {
		return c.JSON(newInviteView(guest.Uuid, *existing))
	}

	invite := model.EventInvite{
		EventID:    event.ID,
		GuestID:    guest.ID,
		RSVPStatus: model.RSVPPending,
	}
	if err := e.invites.Create(&invite); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(newInviteView(guest.Uuid, invite))
}

// RemoveInvite withdraws a guest's invitation to an event
func (e *Controller) RemoveInvite(c *fiber.Ctx) error {
	event, guest, err := e.eventAndGuest(c)
	if err != nil {
		return err
	}
	if event.IsDefault {
		return fiber.NewError(fiber.StatusBadRequest, "default events invite every guest")
	}

	if err := e.invites.Delete(event.ID, guest.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SendInvite emails the event invitation to a guest, stamping the send
// bookkeeping on the invite row
func (e *Controller) SendInvite(c *fiber.Ctx) error {
	if _, ok := e.sender.(*infrastructure.NoEmail); ok {
		return fiber.ErrNotFound
	}

	event, guest, err := e.eventAndGuest(c)
	if err != nil {
		return err
	}
	if guest.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "guest has no email address")
	}

	invite, err := e.invites.FindByEventAndGuest(event.ID, guest.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if invite == nil {
		if !event.IsDefault {
			return fiber.ErrNotFound
		}
		// Default events have no managed rows; one is created on first send
		// to carry the bookkeeping
		invite = &model.EventInvite{
			EventID:    event.ID,
			GuestID:    guest.ID,
			RSVPStatus: model.RSVPPending,
		}
		if err := e.invites.Create(invite); err != nil {
			return fiber.ErrInternalServerError
		}
	}

	body, err := e.composeInvite(*event, *guest)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	subject := fmt.Sprintf("You're invited to %s", event.Name)
	if err := e.sender.Send(guest.Email, subject, body); err != nil {
		return fiber.ErrInternalServerError
	}

	now := time.Now().UTC()
	if invite.EmailSent {
		invite.EmailResendCount++
	}
	invite.EmailSent = true
	invite.EmailSentAt = &now
	if err := e.invites.Update(invite); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(newInviteView(guest.Uuid, *invite))
}

func (e *Controller) composeInvite(event model.Event, guest model.Guest) (string, error) {
	data := struct {
		GuestName string
		EventName string
		Location  string
		Date      string
		Link      string
	}{
		GuestName: guest.FullName(),
		EventName: event.Name,
		Location:  event.Location,
		Link:      fmt.Sprintf("https://%s/rsvp?code=%s", e.config.FQDN, guest.InviteCode),
	}
	if event.Date != nil {
		data.Date = event.Date.Format("Monday, January 2, 2006")
	}

	var body bytes.Buffer
	if err := inviteEmailTemplate.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

func (e *Controller) eventAndGuest(c *fiber.Ctx) (*model.Event, *model.Guest, error) {
	event, err := e.events.FindByUuid(c.Params("uuid"))
	if err != nil {
		return nil, nil, fiber.ErrInternalServerError
	}
	if event == nil {
		return nil, nil, fiber.ErrNotFound
	}

	guest, err := e.guests.FindByUuid(c.Params("guest"))
	if err != nil {
		return nil, nil, fiber.ErrInternalServerError
	}
	if guest == nil {
		return nil, nil, fiber.ErrNotFound
	}

	return event, guest, nil
}
