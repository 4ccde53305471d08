package model

import "time"

// EventInvite joins a guest to an event, carrying the per-event RSVP status
// and invitation email bookkeeping. Unique per (event, guest).
type EventInvite struct {
	ID               uint `gorm:"primarykey"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	EventID          uint `gorm:"uniqueIndex:idx_event_guest; not null"`
	GuestID          uint `gorm:"uniqueIndex:idx_event_guest; not null"`
	RSVPStatus       string `gorm:"not null; default:'pending'"`
	EmailSent        bool   `gorm:"not null; default:false"`
	EmailSentAt      *time.Time
	EmailResendCount int `gorm:"not null; default:0"`
}
