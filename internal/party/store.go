package party

import "github.com/mfdez/evermore/internal/model"

// GuestStore is the persistence boundary this package works against,
// implemented by model.GuestRepository.
type GuestStore interface {
	// FindByInviteCode returns every guest sharing the given code
	FindByInviteCode(code string) ([]model.Guest, error)
	// FindByIdentityRef returns the guest linked to the given subject id,
	// or nil when no guest is linked to it
	FindByIdentityRef(subjectID string) (*model.Guest, error)
	// FindPrimaryByEmail returns the primary guest with the given email,
	// matched case-insensitively. Companions must never be returned.
	FindPrimaryByEmail(email string) (*model.Guest, error)
	Create(guest *model.Guest) error
	Update(guest *model.Guest) error
	// LinkIdentity sets the identity reference on a guest. The write must be
	// conditional: a guest already linked to a different subject is left
	// untouched.
	LinkIdentity(guestID uint, subjectID string) error
}
