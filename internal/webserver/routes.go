package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers) {
	app.Use(controllers.IdentityMiddleware)

	api := app.Group("/api")

	api.Get("/rsvp", controllers.RSVP.Show)
	api.Post("/rsvp", controllers.RSVP.Submit)
	api.Post("/rsvp/link", controllers.RSVP.Link)

	api.Get("/events", controllers.Events.List)
	api.Get("/events/:uuid<guid>/rsvp", controllers.Events.ShowRSVP)
	api.Post("/events/:uuid<guid>/rsvp", controllers.Events.SubmitRSVP)

	admin := api.Group("/admin", controllers.RequireAdminMiddleware)

	admin.Get("/guests", controllers.Guests.List)
	admin.Post("/guests", controllers.Guests.Create)
	admin.Get("/guests/:uuid<guid>", controllers.Guests.Show)
	admin.Put("/guests/:uuid<guid>", controllers.Guests.Update)
	admin.Delete("/guests/:uuid<guid>", controllers.Guests.Delete)

	admin.Get("/events", controllers.Events.ListAll)
	admin.Post("/events", controllers.Events.Create)
	admin.Put("/events/:uuid<guid>", controllers.Events.Update)
	admin.Delete("/events/:uuid<guid>", controllers.Events.Delete)

	admin.Get("/events/:uuid<guid>/invites", controllers.Events.ListInvites)
	admin.Post("/events/:uuid<guid>/invites/:guest<guid>", controllers.Events.AddInvite)
	admin.Delete("/events/:uuid<guid>/invites/:guest<guid>", controllers.Events.RemoveInvite)
	admin.Post("/events/:uuid<guid>/invites/:guest<guid>/send", controllers.Events.SendInvite)
}
