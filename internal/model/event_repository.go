package model

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func (e *EventRepository) List() ([]Event, error) {
	var events []Event

	res := e.DB.Order("date ASC, name ASC").Find(&events)
	if res.Error != nil {
		log.Error().Err(res.Error).Msg("error listing events")
		return nil, res.Error
	}
	return events, nil
}

func (e *EventRepository) Defaults() ([]Event, error) {
	var events []Event

	res := e.DB.Where("is_default = ?", true).Order("date ASC, name ASC").Find(&events)
	if res.Error != nil {
		log.Error().Err(res.Error).Msg("error listing default events")
		return nil, res.Error
	}
	return events, nil
}

func (e *EventRepository) FindByUuid(uuid string) (*Event, error) {
	var event Event

	res := e.DB.Where("uuid = ?", uuid).First(&event)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &event, res.Error
}

func (e *EventRepository) Create(event *Event) error {
	if res := e.DB.Create(event); res.Error != nil {
		log.Error().Err(res.Error).Msg("error creating event")
		return res.Error
	}
	return nil
}

func (e *EventRepository) Update(event *Event) error {
	if res := e.DB.Save(event); res.Error != nil {
		log.Error().Err(res.Error).Msg("error updating event")
		return res.Error
	}
	return nil
}

// Delete removes an event and its invite rows
func (e *EventRepository) Delete(uuid string) error {
	event, err := e.FindByUuid(uuid)
	if err != nil || event == nil {
		return err
	}

	if res := e.DB.Where("event_id = ?", event.ID).Delete(&EventInvite{}); res.Error != nil {
		log.Error().Err(res.Error).Msg("error deleting event invites")
		return res.Error
	}

	if res := e.DB.Delete(event); res.Error != nil {
		log.Error().Err(res.Error).Msg("error deleting event")
		return res.Error
	}
	return nil
}
