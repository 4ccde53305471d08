package event

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mfdez/evermore/internal/model"
)

type eventForm struct {
	Name      string     `json:"name"`
	Date      *time.Time `json:"date"`
	Location  string     `json:"location"`
	IsDefault bool       `json:"is_default"`
}

// Create adds an event from the admin form
func (e *Controller) Create(c *fiber.Ctx) error {
	var form eventForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	event := model.Event{
		Uuid:      uuid.NewString(),
		Name:      form.Name,
		Date:      form.Date,
		Location:  form.Location,
		IsDefault: form.IsDefault,
	}

	if errs := event.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if err := e.events.Create(&event); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(newEventView(event))
}

// Update edits an event from the admin form
func (e *Controller) Update(c *fiber.Ctx) error {
	event, err := e.events.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if event == nil {
		return fiber.ErrNotFound
	}

	var form eventForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	event.Name = form.Name
	event.Date = form.Date
	event.Location = form.Location
	event.IsDefault = form.IsDefault

	if errs := event.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if err := e.events.Update(event); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(newEventView(*event))
}

// Delete removes an event and its invite rows
func (e *Controller) Delete(c *fiber.Ctx) error {
	event, err := e.events.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if event == nil {
		return fiber.ErrNotFound
	}

	if err := e.events.Delete(event.Uuid); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.SendStatus(fiber.StatusNoContent)
}
