package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mfdez/evermore/internal/infrastructure"
	"github.com/mfdez/evermore/internal/model"
)

func repository(t *testing.T) *model.GuestRepository {
	t.Helper()
	return &model.GuestRepository{DB: infrastructure.Connect("file::memory:")}
}

func guest(code string, companion bool, email string) *model.Guest {
	g := &model.Guest{
		Uuid:        uuid.NewString(),
		InviteCode:  code,
		IsCompanion: companion,
		FirstName:   "Guest",
		Email:       email,
	}
	if companion {
		id := uint(1)
		g.PrimaryGuestID = &id
	}
	return g
}

func TestFindByInviteCodeOrdersPrimaryFirst(t *testing.T) {
	repo := repository(t)

	if err := repo.Create(guest("ABCD-1234", true, "")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := repo.Create(guest("ABCD-1234", false, "")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	guests, err := repo.FindByInviteCode("ABCD-1234")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(guests) != 2 {
		t.Fatalf("Expected 2 guests, got %d", len(guests))
	}
	if guests[0].IsCompanion {
		t.Error("Expected the primary guest first")
	}
}

func TestFindPrimaryByEmailExcludesCompanions(t *testing.T) {
	repo := repository(t)

	if err := repo.Create(guest("ABCD-1234", false, "ana@example.com")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := repo.Create(guest("ABCD-1234", true, "jo@example.com")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("Primary emails match case-insensitively", func(t *testing.T) {
		found, err := repo.FindPrimaryByEmail("ANA@Example.COM")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if found == nil || found.Email != "ana@example.com" {
			t.Error("Expected the primary guest to be found")
		}
	})

	t.Run("Companion emails never match", func(t *testing.T) {
		found, err := repo.FindPrimaryByEmail("jo@example.com")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if found != nil {
			t.Error("Expected no match for a companion email")
		}
	})
}

func TestLinkIdentityIsConditional(t *testing.T) {
	repo := repository(t)

	g := guest("ABCD-1234", false, "ana@example.com")
	if err := repo.Create(g); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := repo.LinkIdentity(g.ID, "user-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Linking the same subject again is a no-op; another subject must not
	// overwrite the existing link
	if err := repo.LinkIdentity(g.ID, "user-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := repo.LinkIdentity(g.ID, "user-2"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stored, err := repo.FindByIdentityRef("user-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stored == nil || stored.ID != g.ID {
		t.Error("Expected the original link to survive")
	}
	if other, _ := repo.FindByIdentityRef("user-2"); other != nil {
		t.Error("Expected the second subject to remain unlinked")
	}
}

func TestDuplicateCompanionRejected(t *testing.T) {
	repo := repository(t)

	if err := repo.Create(guest("ABCD-1234", false, "")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := repo.Create(guest("ABCD-1234", true, "")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := repo.Create(guest("ABCD-1234", true, "")); err == nil {
		t.Error("Expected a second companion on the same code to be rejected")
	}
}
