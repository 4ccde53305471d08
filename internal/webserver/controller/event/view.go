package event

import (
	"time"

	"github.com/mfdez/evermore/internal/model"
)

type eventView struct {
	Uuid      string     `json:"uuid"`
	Name      string     `json:"name"`
	Date      *time.Time `json:"date"`
	Location  string     `json:"location,omitempty"`
	IsDefault bool       `json:"is_default"`
}

type inviteView struct {
	GuestUuid        string     `json:"guest_uuid"`
	RSVPStatus       string     `json:"rsvp_status"`
	EmailSent        bool       `json:"email_sent"`
	EmailSentAt      *time.Time `json:"email_sent_at,omitempty"`
	EmailResendCount int        `json:"email_resend_count"`
}

func newEventView(e model.Event) eventView {
	return eventView{
		Uuid:      e.Uuid,
		Name:      e.Name,
		Date:      e.Date,
		Location:  e.Location,
		IsDefault: e.IsDefault,
	}
}

func newEventViews(events []model.Event) []eventView {
	views := make([]eventView, 0, len(events))
	for _, e := range events {
		views = append(views, newEventView(e))
	}
	return views
}

func newInviteView(guestUuid string, invite model.EventInvite) inviteView {
	return inviteView{
		GuestUuid:        guestUuid,
		RSVPStatus:       invite.RSVPStatus,
		EmailSent:        invite.EmailSent,
		EmailSentAt:      invite.EmailSentAt,
		EmailResendCount: invite.EmailResendCount,
	}
}
