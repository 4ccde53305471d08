package webserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// New builds the Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.SiteName,
		ErrorHandler: errorHandler,
	})

	routes(app, controllers)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
