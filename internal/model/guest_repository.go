package model

import (
	"errors"

	"github.com/mfdez/evermore/internal/result"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type GuestRepository struct {
	DB *gorm.DB
}

func (g *GuestRepository) List(page int, resultsPerPage int, filter string) (result.Paginated[[]Guest], error) {
	var guests []Guest

	query := g.DB
	if filter != "" {
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR invite_code LIKE ?",
			"%"+filter+"%", "%"+filter+"%", "%"+filter+"%", "%"+filter+"%")
	}

	res := query.Scopes(Paginate(page, resultsPerPage)).Order("last_name ASC, first_name ASC").Find(&guests)
	if res.Error != nil {
		log.Error().Err(res.Error).Msg("error listing guests")
		return result.Paginated[[]Guest]{}, res.Error
	}

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(g.Total(filter)),
		guests,
	), nil
}

func (g *GuestRepository) Total(filter string) int64 {
	var (
		totalRows int64
		guests    []Guest
	)

	query := g.DB.Model(&guests)
	if filter != "" {
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR invite_code LIKE ?",
			"%"+filter+"%", "%"+filter+"%", "%"+filter+"%", "%"+filter+"%")
	}
	query.Count(&totalRows)
	return totalRows
}

// FindByInviteCode returns every guest sharing the given invite code, the
// primary guest first
func (g *GuestRepository) FindByInviteCode(code string) ([]Guest, error) {
	var guests []Guest

	res := g.DB.Where("invite_code = ?", code).Order("is_companion ASC").Find(&guests)
	if res.Error != nil {
		log.Error().Err(res.Error).Str("code", code).Msg("error finding guests by invite code")
		return nil, res.Error
	}
	return guests, nil
}

func (g *GuestRepository) FindByIdentityRef(subjectID string) (*Guest, error) {
	var guest Guest

	res := g.DB.Where("identity_ref = ?", subjectID).First(&guest)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, res.Error
}

// FindPrimaryByEmail looks up a primary guest by email, case-insensitively.
// Companions are never returned.
func (g *GuestRepository) FindPrimaryByEmail(email string) (*Guest, error) {
	var guest Guest

	res := g.DB.Where("is_companion = ? AND LOWER(email) = LOWER(?)", false, email).First(&guest)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, res.Error
}

func (g *GuestRepository) FindByID(id uint) (*Guest, error) {
	var guest Guest

	res := g.DB.First(&guest, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, res.Error
}

func (g *GuestRepository) FindByUuid(uuid string) (*Guest, error) {
	var guest Guest

	res := g.DB.Where("uuid = ?", uuid).First(&guest)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, res.Error
}

func (g *GuestRepository) Create(guest *Guest) error {
	if res := g.DB.Create(guest); res.Error != nil {
		log.Error().Err(res.Error).Msg("error creating guest")
		return res.Error
	}
	return nil
}

func (g *GuestRepository) Update(guest *Guest) error {
	if res := g.DB.Save(guest); res.Error != nil {
		log.Error().Err(res.Error).Msg("error updating guest")
		return res.Error
	}
	return nil
}

// LinkIdentity sets the identity reference on a guest only if it is unset or
// already holds the same subject, so concurrent link attempts cannot steal an
// already linked record
func (g *GuestRepository) LinkIdentity(guestID uint, subjectID string) error {
	res := g.DB.Model(&Guest{}).
		Where("id = ? AND (identity_ref IS NULL OR identity_ref = ?)", guestID, subjectID).
		Update("identity_ref", subjectID)
	if res.Error != nil {
		log.Error().Err(res.Error).Uint("guest", guestID).Msg("error linking identity")
	}
	return res.Error
}

func (g *GuestRepository) Delete(uuid string) error {
	var guest Guest

	res := g.DB.Where("uuid = ?", uuid).Delete(&guest)
	if res.Error != nil {
		log.Error().Err(res.Error).Msg("error deleting guest")
	}
	return res.Error
}
