package party_test

import (
	"strings"
	"sync"

	"github.com/mfdez/evermore/internal/model"
)

// memStore is an in-memory GuestStore used by the tests in this package
type memStore struct {
	mu     sync.Mutex
	guests []model.Guest
	nextID uint
	calls  int
}

func newMemStore(guests ...model.Guest) *memStore {
	s := &memStore{}
	for _, g := range guests {
		s.add(g)
	}
	return s
}

func (s *memStore) add(g model.Guest) model.Guest {
	s.nextID++
	if g.ID == 0 {
		g.ID = s.nextID
	}
	if g.RSVPStatus == "" {
		g.RSVPStatus = model.RSVPPending
	}
	s.guests = append(s.guests, g)
	return g
}

func (s *memStore) FindByInviteCode(code string) ([]model.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	var guests []model.Guest
	for _, g := range s.guests {
		if g.InviteCode == code {
			guests = append(guests, g)
		}
	}
	return guests, nil
}

func (s *memStore) FindByIdentityRef(subjectID string) (*model.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	for _, g := range s.guests {
		if g.IdentityRef != nil && *g.IdentityRef == subjectID {
			g := g
			return &g, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindPrimaryByEmail(email string) (*model.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	for _, g := range s.guests {
		if !g.IsCompanion && g.Email != "" && strings.EqualFold(g.Email, email) {
			g := g
			return &g, nil
		}
	}
	return nil, nil
}

func (s *memStore) Create(guest *model.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	*guest = s.add(*guest)
	return nil
}

func (s *memStore) Update(guest *model.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	for i := range s.guests {
		if s.guests[i].ID == guest.ID {
			s.guests[i] = *guest
		}
	}
	return nil
}

func (s *memStore) LinkIdentity(guestID uint, subjectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	for i := range s.guests {
		g := &s.guests[i]
		if g.ID == guestID && (g.IdentityRef == nil || *g.IdentityRef == subjectID) {
			ref := subjectID
			g.IdentityRef = &ref
		}
	}
	return nil
}

func (s *memStore) byID(id uint) *model.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.guests {
		if g.ID == id {
			g := g
			return &g
		}
	}
	return nil
}

func (s *memStore) companionsOf(code string) []model.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var companions []model.Guest
	for _, g := range s.guests {
		if g.InviteCode == code && g.IsCompanion {
			companions = append(companions, g)
		}
	}
	return companions
}

func strPtr(s string) *string {
	return &s
}
