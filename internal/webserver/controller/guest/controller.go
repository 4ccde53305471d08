package guest

import (
	"github.com/mfdez/evermore/internal/model"
	"github.com/mfdez/evermore/internal/party"
	"github.com/mfdez/evermore/internal/result"
)

type guestsRepository interface {
	party.GuestStore
	List(page int, resultsPerPage int, filter string) (result.Paginated[[]model.Guest], error)
	FindByUuid(uuid string) (*model.Guest, error)
	Delete(uuid string) error
}

// Controller is the admin back office for guest records
type Controller struct {
	repository guestsRepository
}

func NewController(repository guestsRepository) *Controller {
	return &Controller{
		repository: repository,
	}
}
