package webserver_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/mfdez/evermore/internal/infrastructure"
	"github.com/mfdez/evermore/internal/model"
)

func TestShowRSVP(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	primary := seedGuest(t, db, model.Guest{
		InviteCode:       "ABCD-1234",
		FirstName:        "Ana",
		LastName:         "García",
		CompanionAllowed: true,
	})

	t.Run("An invite code resolves regardless of case", func(t *testing.T) {
		for _, code := range []string{"ABCD-1234", "abcd-1234"} {
			req, _ := http.NewRequest(http.MethodGet, "/api/rsvp?code="+code, nil)

			response, err := app.Test(req)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			if response.StatusCode != http.StatusOK {
				t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
			}

			var view struct {
				InviteCode string `json:"invite_code"`
				Primary    struct {
					Uuid string `json:"uuid"`
				} `json:"primary"`
			}
			if err := json.NewDecoder(response.Body).Decode(&view); err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			if view.InviteCode != "ABCD-1234" {
				t.Errorf("Expected invite code ABCD-1234, got %s", view.InviteCode)
			}
			if view.Primary.Uuid != primary.Uuid {
				t.Errorf("Expected primary %s, got %s", primary.Uuid, view.Primary.Uuid)
			}
		}
	})

	t.Run("Too short codes are rejected before lookup", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/api/rsvp?code=AB-12", nil)

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", http.StatusBadRequest, response.StatusCode)
		}
	})

	t.Run("A linked identity resolves without a code", func(t *testing.T) {
		seedGuest(t, db, model.Guest{
			InviteCode:  "WXYZ-9876",
			FirstName:   "Luis",
			Email:       "luis@example.com",
			IdentityRef: strPtr("auth0|luis"),
		})

		req, _ := http.NewRequest(http.MethodGet, "/api/rsvp", nil)
		req.AddCookie(sessionCookie(t, "auth0|luis", "luis@example.com"))

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
		}

		var view struct {
			InviteCode      string `json:"invite_code"`
			IsAuthenticated bool   `json:"is_authenticated"`
		}
		if err := json.NewDecoder(response.Body).Decode(&view); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if view.InviteCode != "WXYZ-9876" {
			t.Errorf("Expected invite code WXYZ-9876, got %s", view.InviteCode)
		}
		if !view.IsAuthenticated {
			t.Error("Expected an authenticated party")
		}
	})
}

func TestSubmitRSVP(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	smtpMock := newSMTPMock()
	app := bootstrapApp(db, smtpMock)

	seedGuest(t, db, model.Guest{
		InviteCode:       "ABCD-1234",
		FirstName:        "Ana",
		CompanionAllowed: true,
	})

	t.Run("A submission without code is rejected", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/api/rsvp", strings.NewReader(`{"attending":true}`))
		req.Header.Add("Content-Type", "application/json")

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", http.StatusBadRequest, response.StatusCode)
		}
	})

	t.Run("An accept with a named companion creates the companion and notifies", func(t *testing.T) {
		body := `{
			"invite_code": "abcd-1234",
			"attending": true,
			"dietary_restrictions": "vegan",
			"companion": {"attending": true, "first_name": "Jane", "last_name": "Doe"}
		}`
		req, _ := http.NewRequest(http.MethodPost, "/api/rsvp", strings.NewReader(body))
		req.Header.Add("Content-Type", "application/json")

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
		}

		var view struct {
			Primary struct {
				RSVPStatus string `json:"rsvp_status"`
			} `json:"primary"`
			Companion *struct {
				FirstName  string `json:"first_name"`
				RSVPStatus string `json:"rsvp_status"`
			} `json:"companion"`
		}
		if err := json.NewDecoder(response.Body).Decode(&view); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if view.Primary.RSVPStatus != model.RSVPYes {
			t.Errorf("Expected primary status yes, got %s", view.Primary.RSVPStatus)
		}
		if view.Companion == nil || view.Companion.FirstName != "Jane" || view.Companion.RSVPStatus != model.RSVPYes {
			t.Error("Expected an attending companion named Jane")
		}

		notification := smtpMock.wait(t)
		if notification.address != "couple@example.com" {
			t.Errorf("Expected the notification to go to the admin mailbox, got %s", notification.address)
		}
		if !strings.Contains(notification.body, "ABCD-1234") {
			t.Error("Expected the notification to carry the invite code")
		}
	})

	t.Run("A decline cascades to the companion", func(t *testing.T) {
		body := `{"invite_code": "ABCD-1234", "attending": false}`
		req, _ := http.NewRequest(http.MethodPost, "/api/rsvp", strings.NewReader(body))
		req.Header.Add("Content-Type", "application/json")

		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
		}

		repository := model.GuestRepository{DB: db}
		guests, err := repository.FindByInviteCode("ABCD-1234")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if len(guests) != 2 {
			t.Fatalf("Expected 2 guests, got %d", len(guests))
		}
		for _, guest := range guests {
			if guest.RSVPStatus != model.RSVPNo {
				t.Errorf("Expected %s to be declined, got %s", guest.FirstName, guest.RSVPStatus)
			}
		}
		smtpMock.wait(t)
	})
}

func TestLinkIdentity(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	seedGuest(t, db, model.Guest{
		InviteCode: "ABCD-1234",
		FirstName:  "Ana",
		Email:      "ana@example.com",
	})

	link := func(t *testing.T, cookie *http.Cookie) *http.Response {
		t.Helper()
		req, _ := http.NewRequest(http.MethodPost, "/api/rsvp/link", strings.NewReader(`{"invite_code":"abcd-1234"}`))
		req.Header.Add("Content-Type", "application/json")
		if cookie != nil {
			req.AddCookie(cookie)
		}
		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		return response
	}

	t.Run("Anonymous linking is rejected", func(t *testing.T) {
		if response := link(t, nil); response.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, response.StatusCode)
		}
	})

	t.Run("Linking is idempotent for the same identity", func(t *testing.T) {
		cookie := sessionCookie(t, "auth0|ana", "ana@example.com")
		for i := 0; i < 2; i++ {
			if response := link(t, cookie); response.StatusCode != http.StatusOK {
				t.Fatalf("Expected status %d on attempt %d, got %d", http.StatusOK, i+1, response.StatusCode)
			}
		}
	})

	t.Run("Another identity cannot steal a linked party", func(t *testing.T) {
		cookie := sessionCookie(t, "auth0|intruder", "intruder@example.com")
		if response := link(t, cookie); response.StatusCode != http.StatusConflict {
			t.Errorf("Expected status %d, got %d", http.StatusConflict, response.StatusCode)
		}
	})
}

func strPtr(s string) *string {
	return &s
}
