package model

import "time"

// Event is a named celebration moment (ceremony, rehearsal dinner, brunch).
// Default events implicitly invite every guest; the others require an
// EventInvite row per guest.
type Event struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex; not null"`
	Name      string `gorm:"not null"`
	Date      *time.Time
	Location  string
	IsDefault bool `gorm:"not null; default:false"`
}

// Validate checks the event fields filled in by the admin event form
func (e Event) Validate() map[string]string {
	errs := map[string]string{}

	if e.Name == "" {
		errs["name"] = "Name cannot be empty"
	}

	if len(e.Name) > 100 {
		errs["name"] = "Name cannot be longer than 100 characters"
	}

	return errs
}
