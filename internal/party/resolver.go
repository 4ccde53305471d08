package party

import (
	"strings"

	"github.com/mfdez/evermore/internal/model"
)

// Resolver turns an invite code and/or an authenticated identity into a
// Party view.
type Resolver struct {
	store  GuestStore
	admins AdminAllowList
}

func NewResolver(store GuestStore, admins AdminAllowList) *Resolver {
	return &Resolver{
		store:  store,
		admins: admins,
	}
}

// Resolve determines the party for a visitor. Precedence, strictly:
//
//  1. An identity already linked to a guest always resolves to that guest's
//     code, overriding any explicit one.
//  2. An unlinked identity is auto-linked by verified-email match against
//     primary guests, persisting the link as a side effect.
//  3. An explicit code (URL, cookie or manual entry) is used as given,
//     uppercased.
//
// Resolve returns nil with no error when no party can be determined: a first
// visit without a code is an expected state, not a failure.
func (r *Resolver) Resolve(explicitCode string, identity *Identity) (*Party, error) {
	code := NormalizeCode(explicitCode)

	if identity != nil && identity.SubjectID != "" {
		linked, err := r.store.FindByIdentityRef(identity.SubjectID)
		if err != nil {
			return nil, err
		}
		if linked == nil {
			if linked, err = r.AutoLink(identity); err != nil {
				return nil, err
			}
		}
		if linked != nil {
			code = linked.InviteCode
		}
	}

	if code == "" {
		return nil, nil
	}

	guests, err := r.store.FindByInviteCode(code)
	if err != nil {
		return nil, err
	}

	primary, companion := split(guests)
	if primary == nil {
		return nil, nil
	}

	party := &Party{
		InviteCode: code,
		Primary:    *primary,
		Companion:  companion,
	}
	if identity != nil {
		party.IsAuthenticated = true
		party.IsAdmin = r.admins.Allows(identity.Emails)
	}
	return party, nil
}

// AutoLink searches for a primary guest whose email matches one of the
// identity's verified emails and persists the link. Companions are never
// candidates. The write is conditional, so re-resolving the same identity
// concurrently cannot produce conflicting links.
func (r *Resolver) AutoLink(identity *Identity) (*model.Guest, error) {
	for _, email := range identity.Emails {
		if strings.TrimSpace(email) == "" {
			continue
		}
		guest, err := r.store.FindPrimaryByEmail(email)
		if err != nil {
			return nil, err
		}
		if guest == nil {
			continue
		}
		if guest.IdentityRef != nil && *guest.IdentityRef != identity.SubjectID {
			// Claimed by another identity in the meantime, keep looking
			continue
		}
		if err := r.store.LinkIdentity(guest.ID, identity.SubjectID); err != nil {
			return nil, err
		}
		return guest, nil
	}
	return nil, nil
}
