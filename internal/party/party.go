// Package party holds the guest-identity resolution and RSVP submission
// logic of the wedding site: resolving an invite code or a signed-in identity
// to a primary guest plus optional companion, linking identities to guest
// records, and applying RSVP decisions with their plus-one cascade.
package party

import (
	"strings"

	"github.com/mfdez/evermore/internal/model"
)

// Identity is the view of an authenticated visitor supplied by the auth
// provider: an opaque subject id plus the verified email addresses attached
// to it.
type Identity struct {
	SubjectID string
	Emails    []string
}

// Party is the resolved pairing of a primary guest and its optional
// companion. It is recomputed on every resolution and never persisted.
type Party struct {
	InviteCode      string
	Primary         model.Guest
	Companion       *model.Guest
	IsAuthenticated bool
	IsAdmin         bool
}

// AdminAllowList is the set of email addresses granted access to the back
// office. Matching is case-insensitive and independent of guest linkage.
type AdminAllowList map[string]struct{}

func NewAdminAllowList(emails []string) AdminAllowList {
	list := AdminAllowList{}
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			list[email] = struct{}{}
		}
	}
	return list
}

func (a AdminAllowList) Allows(emails []string) bool {
	for _, email := range emails {
		if _, ok := a[strings.ToLower(strings.TrimSpace(email))]; ok {
			return true
		}
	}
	return false
}

// split separates the guests sharing an invite code into the primary guest
// and, when present, its companion
func split(guests []model.Guest) (primary *model.Guest, companion *model.Guest) {
	for i := range guests {
		if guests[i].IsCompanion {
			companion = &guests[i]
		} else {
			primary = &guests[i]
		}
	}
	return primary, companion
}
