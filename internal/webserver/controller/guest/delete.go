package guest

import (
	"github.com/gofiber/fiber/v2"
)

// Delete removes a guest record. Deleting a primary guest also removes its
// companion, since a companion cannot exist on its own.
func (g *Controller) Delete(c *fiber.Ctx) error {
	guest, err := g.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if guest == nil {
		return fiber.ErrNotFound
	}

	if !guest.IsCompanion {
		members, err := g.repository.FindByInviteCode(guest.InviteCode)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		for _, member := range members {
			if member.IsCompanion {
				if err := g.repository.Delete(member.Uuid); err != nil {
					return fiber.ErrInternalServerError
				}
			}
		}
	}

	if err := g.repository.Delete(guest.Uuid); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.SendStatus(fiber.StatusNoContent)
}
