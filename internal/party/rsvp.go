package party

import (
	"github.com/google/uuid"
	"github.com/mfdez/evermore/internal/model"
	"github.com/rs/zerolog/log"
)

// Decision is an attendee's RSVP submission. Contact fields carry full
// overwrite semantics: whatever is submitted replaces the stored value, and
// empty means null, not "unchanged".
type Decision struct {
	Attending              bool
	DietaryRestrictions    string
	Phone                  string
	Whatsapp               string
	PreferredContactMethod string
	MailingAddress         string
	// Companion is the statement about the plus-one, if any. Nil means the
	// submitter said nothing about their companion, which deliberately
	// leaves an existing companion record untouched.
	Companion *CompanionDecision
}

// CompanionDecision carries the plus-one part of a submission
type CompanionDecision struct {
	Attending           bool
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	DietaryRestrictions string
}

// Notifier receives a summary of every successfully stored submission.
// Errors are logged and never surface to the submitter.
type Notifier interface {
	RSVPReceived(party Party) error
}

// Engine applies RSVP submissions to a party's guest records
type Engine struct {
	store    GuestStore
	notifier Notifier
}

func NewEngine(store GuestStore, notifier Notifier) *Engine {
	return &Engine{
		store:    store,
		notifier: notifier,
	}
}

// Submit stores an attendance decision for the party behind the given invite
// code and returns the resulting party state. The companion cascade only
// runs when the primary guest is allowed a companion:
//
//   - primary declines: an existing companion is forced to no and its dietary
//     notes cleared; no companion is ever created on decline
//   - primary accepts with an attending, named companion: the companion
//     record is updated, or lazily created when absent
//   - primary accepts with an explicitly non-attending companion: an
//     existing companion is set to no, dietary notes cleared
//   - primary accepts saying nothing about the companion: no companion write
func (e *Engine) Submit(code string, decision Decision) (*Party, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrMissingInviteCode
	}

	guests, err := e.store.FindByInviteCode(code)
	if err != nil {
		return nil, err
	}
	if len(guests) == 0 {
		return nil, ErrInvalidInviteCode
	}

	primary, companion := split(guests)
	if primary == nil {
		return nil, ErrPrimaryNotFound
	}

	applyPrimary(primary, decision)
	if err := e.store.Update(primary); err != nil {
		return nil, err
	}

	if primary.CompanionAllowed {
		if companion, err = e.applyCompanion(primary, companion, decision); err != nil {
			return nil, err
		}
	}

	party := &Party{
		InviteCode: code,
		Primary:    *primary,
		Companion:  companion,
	}
	e.notify(*party)
	return party, nil
}

func applyPrimary(primary *model.Guest, decision Decision) {
	if decision.Attending {
		primary.RSVPStatus = model.RSVPYes
		primary.DietaryRestrictions = nullable(decision.DietaryRestrictions)
	} else {
		primary.RSVPStatus = model.RSVPNo
		primary.DietaryRestrictions = nil
	}
	primary.Phone = nullable(decision.Phone)
	primary.Whatsapp = nullable(decision.Whatsapp)
	primary.PreferredContactMethod = nullable(decision.PreferredContactMethod)
	primary.MailingAddress = nullable(decision.MailingAddress)
}

func (e *Engine) applyCompanion(primary *model.Guest, companion *model.Guest, decision Decision) (*model.Guest, error) {
	cd := decision.Companion

	switch {
	case !decision.Attending:
		// Primary declined: cascade to an existing companion only
		if companion == nil {
			return nil, nil
		}
		companion.RSVPStatus = model.RSVPNo
		companion.DietaryRestrictions = nil
		return companion, e.store.Update(companion)

	case cd != nil && cd.Attending && cd.FirstName != "":
		if companion == nil {
			companion = &model.Guest{
				Uuid:           uuid.NewString(),
				InviteCode:     primary.InviteCode,
				IsCompanion:    true,
				PrimaryGuestID: &primary.ID,
				Family:         primary.Family,
				Side:           primary.Side,
				List:           primary.List,
			}
			fillCompanion(companion, *cd)
			return companion, e.store.Create(companion)
		}
		fillCompanion(companion, *cd)
		return companion, e.store.Update(companion)

	case cd != nil && !cd.Attending && companion != nil:
		companion.RSVPStatus = model.RSVPNo
		companion.DietaryRestrictions = nil
		return companion, e.store.Update(companion)
	}

	// No usable companion statement: unknown stays unknown
	return companion, nil
}

func fillCompanion(companion *model.Guest, cd CompanionDecision) {
	companion.FirstName = cd.FirstName
	companion.LastName = cd.LastName
	companion.Email = cd.Email
	companion.Phone = nullable(cd.Phone)
	companion.DietaryRestrictions = nullable(cd.DietaryRestrictions)
	companion.RSVPStatus = model.RSVPYes
}

// notify dispatches the admin notification in the background. A submission
// never fails because of email trouble.
func (e *Engine) notify(party Party) {
	if e.notifier == nil {
		return
	}
	go func() {
		if err := e.notifier.RSVPReceived(party); err != nil {
			log.Error().Err(err).Str("code", party.InviteCode).Msg("error notifying RSVP submission")
		}
	}()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
