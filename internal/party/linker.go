package party

import (
	"strings"

	"github.com/mfdez/evermore/internal/model"
)

// Linker binds an authenticated identity to exactly one guest record of a
// party. It is the explicit, user-initiated counterpart to the resolver's
// auto-link, invoked right after sign-in completes on an RSVP deep link.
type Linker struct {
	store GuestStore
}

func NewLinker(store GuestStore) *Linker {
	return &Linker{store: store}
}

// Link attaches subjectID to one guest of the party identified by code and
// returns the linked guest. The target is the party member whose email
// matches one of the identity's verified emails, defaulting to the primary
// guest. Re-linking the same identity is idempotent; a primary already
// linked to a different identity fails with ErrAlreadyLinked.
func (l *Linker) Link(subjectID string, emails []string, code string) (*model.Guest, error) {
	if subjectID == "" {
		return nil, ErrNotAuthenticated
	}

	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrInvalidInviteCode
	}

	guests, err := l.store.FindByInviteCode(code)
	if err != nil {
		return nil, err
	}
	if len(guests) == 0 {
		return nil, ErrInvalidInviteCode
	}

	primary, _ := split(guests)
	if primary == nil {
		return nil, ErrInvalidInviteCode
	}

	if primary.IdentityRef != nil && *primary.IdentityRef != subjectID {
		return nil, ErrAlreadyLinked
	}

	target := primary
	for i := range guests {
		if matchesAny(guests[i].Email, emails) {
			target = &guests[i]
			break
		}
	}

	if target.IdentityRef != nil && *target.IdentityRef != subjectID {
		return nil, ErrAlreadyLinked
	}

	if err := l.store.LinkIdentity(target.ID, subjectID); err != nil {
		return nil, err
	}
	target.IdentityRef = &subjectID
	return target, nil
}

func matchesAny(email string, candidates []string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	for _, candidate := range candidates {
		if strings.EqualFold(strings.TrimSpace(candidate), email) {
			return true
		}
	}
	return false
}
