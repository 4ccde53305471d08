package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfdez/evermore/internal/model"
	"github.com/mfdez/evermore/internal/party"
	"github.com/mfdez/evermore/internal/webserver/controller/event"
	"github.com/mfdez/evermore/internal/webserver/controller/guest"
	"github.com/mfdez/evermore/internal/webserver/controller/rsvp"
	"gorm.io/gorm"
)

type Controllers struct {
	RSVP                   *rsvp.Controller
	Guests                 *guest.Controller
	Events                 *event.Controller
	IdentityMiddleware     func(c *fiber.Ctx) error
	RequireAdminMiddleware func(c *fiber.Ctx) error
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender) Controllers {
	guestsRepository := &model.GuestRepository{DB: db}
	eventsRepository := &model.EventRepository{DB: db}
	invitesRepository := &model.EventInviteRepository{DB: db}

	admins := party.NewAdminAllowList(cfg.AdminEmails)
	resolver := party.NewResolver(guestsRepository, admins)
	linker := party.NewLinker(guestsRepository)
	notifier := NewEmailNotifier(sender, cfg.NotifyEmail, cfg.SiteName)
	engine := party.NewEngine(guestsRepository, notifier)

	eventCfg := event.Config{
		SiteName: cfg.SiteName,
		FQDN:     cfg.FQDN,
	}

	return Controllers{
		RSVP:                   rsvp.NewController(resolver, linker, engine),
		Guests:                 guest.NewController(guestsRepository),
		Events:                 event.NewController(eventsRepository, invitesRepository, guestsRepository, resolver, sender, eventCfg),
		IdentityMiddleware:     Identity(cfg.JwtSecret),
		RequireAdminMiddleware: RequireAdmin(admins),
	}
}
