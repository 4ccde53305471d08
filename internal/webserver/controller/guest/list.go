package guest

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mfdez/evermore/internal/model"
)

// List returns one page of the guest list, optionally filtered by name,
// email or invite code
func (g *Controller) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	guests, err := g.repository.List(page, model.ResultsPerPage, c.Query("filter"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"results":       newGuestViews(guests.Hits()),
		"page":          guests.Page(),
		"total_pages":   guests.TotalPages(),
		"total_results": guests.TotalHits(),
	})
}

// Show returns a single guest by uuid
func (g *Controller) Show(c *fiber.Ctx) error {
	guest, err := g.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if guest == nil {
		return fiber.ErrNotFound
	}

	return c.JSON(newGuestView(*guest))
}
