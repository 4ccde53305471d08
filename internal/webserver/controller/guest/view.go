package guest

import "github.com/mfdez/evermore/internal/model"

type guestView struct {
	Uuid                   string  `json:"uuid"`
	InviteCode             string  `json:"invite_code"`
	IsCompanion            bool    `json:"is_companion"`
	CompanionAllowed       bool    `json:"companion_allowed"`
	Linked                 bool    `json:"linked"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Email                  string  `json:"email"`
	Phone                  *string `json:"phone"`
	Whatsapp               *string `json:"whatsapp"`
	PreferredContactMethod *string `json:"preferred_contact_method"`
	MailingAddress         *string `json:"mailing_address"`
	Under21                bool    `json:"under_21"`
	Family                 string  `json:"family"`
	Side                   string  `json:"side"`
	List                   string  `json:"list"`
	DietaryRestrictions    *string `json:"dietary_restrictions"`
	RSVPStatus             string  `json:"rsvp_status"`
}

func newGuestView(g model.Guest) guestView {
	return guestView{
		Uuid:                   g.Uuid,
		InviteCode:             g.InviteCode,
		IsCompanion:            g.IsCompanion,
		CompanionAllowed:       g.CompanionAllowed,
		Linked:                 g.IdentityRef != nil,
		FirstName:              g.FirstName,
		LastName:               g.LastName,
		Email:                  g.Email,
		Phone:                  g.Phone,
		Whatsapp:               g.Whatsapp,
		PreferredContactMethod: g.PreferredContactMethod,
		MailingAddress:         g.MailingAddress,
		Under21:                g.Under21,
		Family:                 g.Family,
		Side:                   g.Side,
		List:                   g.List,
		DietaryRestrictions:    g.DietaryRestrictions,
		RSVPStatus:             g.RSVPStatus,
	}
}

func newGuestViews(guests []model.Guest) []guestView {
	views := make([]guestView, 0, len(guests))
	for _, g := range guests {
		views = append(views, newGuestView(g))
	}
	return views
}
