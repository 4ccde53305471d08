package rsvp

import (
	"github.com/mfdez/evermore/internal/model"
	"github.com/mfdez/evermore/internal/party"
)

type guestView struct {
	Uuid                   string  `json:"uuid"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Email                  string  `json:"email,omitempty"`
	Phone                  *string `json:"phone"`
	Whatsapp               *string `json:"whatsapp"`
	PreferredContactMethod *string `json:"preferred_contact_method"`
	MailingAddress         *string `json:"mailing_address"`
	DietaryRestrictions    *string `json:"dietary_restrictions"`
	RSVPStatus             string  `json:"rsvp_status"`
}

type partyView struct {
	InviteCode       string     `json:"invite_code"`
	Primary          guestView  `json:"primary"`
	Companion        *guestView `json:"companion,omitempty"`
	CompanionAllowed bool       `json:"companion_allowed"`
	IsAuthenticated  bool       `json:"is_authenticated"`
	IsAdmin          bool       `json:"is_admin"`
}

func newGuestView(g model.Guest) guestView {
	return guestView{
		Uuid:                   g.Uuid,
		FirstName:              g.FirstName,
		LastName:               g.LastName,
		Email:                  g.Email,
		Phone:                  g.Phone,
		Whatsapp:               g.Whatsapp,
		PreferredContactMethod: g.PreferredContactMethod,
		MailingAddress:         g.MailingAddress,
		DietaryRestrictions:    g.DietaryRestrictions,
		RSVPStatus:             g.RSVPStatus,
	}
}

func newPartyView(p party.Party) partyView {
	view := partyView{
		InviteCode:       p.InviteCode,
		Primary:          newGuestView(p.Primary),
		CompanionAllowed: p.Primary.CompanionAllowed,
		IsAuthenticated:  p.IsAuthenticated,
		IsAdmin:          p.IsAdmin,
	}
	if p.Companion != nil {
		companion := newGuestView(*p.Companion)
		view.Companion = &companion
	}
	return view
}
