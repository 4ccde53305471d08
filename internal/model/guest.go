package model

import (
	"net/mail"
	"time"
)

// Attendance statuses a guest can be in. Every guest starts as pending.
const (
	RSVPPending = "pending"
	RSVPYes     = "yes"
	RSVPNo      = "no"
)

// Guest represents one invited individual. A primary guest owns an invite
// code; its at-most-one companion shares the same code with IsCompanion set.
type Guest struct {
	ID                     uint `gorm:"primarykey"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	Uuid                   string  `gorm:"uniqueIndex; not null"`
	InviteCode             string  `gorm:"uniqueIndex:idx_guests_code_role; not null"`
	IsCompanion            bool    `gorm:"uniqueIndex:idx_guests_code_role; not null; default:false"`
	PrimaryGuestID         *uint   `gorm:"index"`
	CompanionAllowed       bool    `gorm:"not null; default:false"`
	IdentityRef            *string `gorm:"uniqueIndex"`
	Email                  string
	FirstName              string
	LastName               string
	Phone                  *string
	Whatsapp               *string
	PreferredContactMethod *string
	MailingAddress         *string
	Under21                bool
	Family                 string
	Side                   string
	List                   string
	DietaryRestrictions    *string
	RSVPStatus             string `gorm:"not null; default:'pending'"`
}

// FullName returns the guest display name used in listings and emails
func (g Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}

// Validate checks the guest fields filled in by the admin guest form
func (g Guest) Validate() map[string]string {
	errs := map[string]string{}

	if g.FirstName == "" {
		errs["firstname"] = "First name cannot be empty"
	}

	if len(g.FirstName) > 50 {
		errs["firstname"] = "First name cannot be longer than 50 characters"
	}

	if len(g.LastName) > 50 {
		errs["lastname"] = "Last name cannot be longer than 50 characters"
	}

	if _, err := mail.ParseAddress(g.Email); g.Email != "" && err != nil {
		errs["email"] = "Incorrect email address"
	}

	if len(g.Email) > 100 {
		errs["email"] = "Email cannot be longer than 100 characters"
	}

	if g.RSVPStatus != RSVPPending && g.RSVPStatus != RSVPYes && g.RSVPStatus != RSVPNo {
		errs["rsvpstatus"] = "Incorrect RSVP status"
	}

	if g.IsCompanion && g.PrimaryGuestID == nil {
		errs["primaryguest"] = "A companion must reference its primary guest"
	}

	return errs
}
