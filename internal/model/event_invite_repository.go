package model

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type EventInviteRepository struct {
	DB *gorm.DB
}

func (e *EventInviteRepository) FindByEventAndGuest(eventID, guestID uint) (*EventInvite, error) {
	var invite EventInvite

	res := e.DB.Where("event_id = ? AND guest_id = ?", eventID, guestID).First(&invite)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invite, res.Error
}

func (e *EventInviteRepository) ListByEvent(eventID uint) ([]EventInvite, error) {
	var invites []EventInvite

	res := e.DB.Where("event_id = ?", eventID).Order("created_at ASC").Find(&invites)
	if res.Error != nil {
		log.Error().Err(res.Error).Uint("event", eventID).Msg("error listing event invites")
		return nil, res.Error
	}
	return invites, nil
}

func (e *EventInviteRepository) ListByGuest(guestID uint) ([]EventInvite, error) {
	var invites []EventInvite

	res := e.DB.Where("guest_id = ?", guestID).Order("created_at ASC").Find(&invites)
	if res.Error != nil {
		log.Error().Err(res.Error).Uint("guest", guestID).Msg("error listing guest invites")
		return nil, res.Error
	}
	return invites, nil
}

func (e *EventInviteRepository) Create(invite *EventInvite) error {
	if res := e.DB.Create(invite); res.Error != nil {
		log.Error().Err(res.Error).Msg("error creating event invite")
		return res.Error
	}
	return nil
}

func (e *EventInviteRepository) Update(invite *EventInvite) error {
	if res := e.DB.Save(invite); res.Error != nil {
		log.Error().Err(res.Error).Msg("error updating event invite")
		return res.Error
	}
	return nil
}

func (e *EventInviteRepository) Delete(eventID, guestID uint) error {
	res := e.DB.Where("event_id = ? AND guest_id = ?", eventID, guestID).Delete(&EventInvite{})
	if res.Error != nil && !errors.Is(res.Error, gorm.ErrRecordNotFound) {
		log.Error().Err(res.Error).Msg("error deleting event invite")
	}
	return res.Error
}
