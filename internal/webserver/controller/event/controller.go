package event

import (
	"github.com/mfdez/evermore/internal/model"
	"github.com/mfdez/evermore/internal/party"
)

type eventsRepository interface {
	List() ([]model.Event, error)
	Defaults() ([]model.Event, error)
	FindByUuid(uuid string) (*model.Event, error)
	Create(event *model.Event) error
	Update(event *model.Event) error
	Delete(uuid string) error
}

type invitesRepository interface {
	FindByEventAndGuest(eventID, guestID uint) (*model.EventInvite, error)
	ListByEvent(eventID uint) ([]model.EventInvite, error)
	ListByGuest(guestID uint) ([]model.EventInvite, error)
	Create(invite *model.EventInvite) error
	Update(invite *model.EventInvite) error
	Delete(eventID, guestID uint) error
}

type guestsRepository interface {
	FindByUuid(uuid string) (*model.Guest, error)
	FindByID(id uint) (*model.Guest, error)
}

type partyResolver interface {
	Resolve(explicitCode string, identity *party.Identity) (*party.Party, error)
}

type inviteEmail interface {
	Send(address, subject, body string) error
}

type Config struct {
	SiteName string
	FQDN     string
}

// Controller serves the event list, the per-event RSVP flow and the admin
// event/invite management
type Controller struct {
	events   eventsRepository
	invites  invitesRepository
	guests   guestsRepository
	resolver partyResolver
	sender   inviteEmail
	config   Config
}

func NewController(events eventsRepository, invites invitesRepository, guests guestsRepository, resolver partyResolver, sender inviteEmail, cfg Config) *Controller {
	return &Controller{
		events:   events,
		invites:  invites,
		guests:   guests,
		resolver: resolver,
		sender:   sender,
		config:   cfg,
	}
}
