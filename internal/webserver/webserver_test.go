package webserver_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mfdez/evermore/internal/infrastructure"
	"github.com/mfdez/evermore/internal/model"
	"github.com/mfdez/evermore/internal/party"
	"github.com/mfdez/evermore/internal/webserver"
	"github.com/mfdez/evermore/internal/webserver/jwtclaimsreader"
	"gorm.io/gorm"
)

var jwtSecret = []byte("testing-secret")

func TestGET(t *testing.T) {
	var cases = []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{"The RSVP endpoint returns not found without a code", "/api/rsvp", http.StatusNotFound},
		{"The events endpoint is public", "/api/events", http.StatusOK},
		{"The admin area rejects anonymous requests", "/api/admin/guests", http.StatusUnauthorized},
		{"Unknown URLs return not found", "/api/nope", http.StatusNotFound},
	}

	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tcase.url, nil)

			response, err := app.Test(req)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			if response.StatusCode != tcase.expectedStatus {
				t.Errorf("Wrong status code received, expected %d, got %d", tcase.expectedStatus, response.StatusCode)
			}
		})
	}
}

func bootstrapApp(db *gorm.DB, sender webserver.Sender) *fiber.App {
	webserverConfig := webserver.Config{
		SiteName:    "Evermore",
		FQDN:        "wedding.example.com",
		JwtSecret:   jwtSecret,
		AdminEmails: []string{"admin@example.com"},
		NotifyEmail: "couple@example.com",
	}

	controllers := webserver.SetupControllers(webserverConfig, db, sender)
	return webserver.New(webserverConfig, controllers)
}

// sessionCookie signs a session token the way the auth provider would
func sessionCookie(t *testing.T, subjectID string, emails ...string) *http.Cookie {
	t.Helper()

	identity := &party.Identity{SubjectID: subjectID, Emails: emails}
	token, err := jwtclaimsreader.GenerateToken(identity, time.Now().Add(time.Hour), jwtSecret)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	return &http.Cookie{Name: webserver.SessionCookieName, Value: token}
}

func seedGuest(t *testing.T, db *gorm.DB, guest model.Guest) model.Guest {
	t.Helper()

	if guest.Uuid == "" {
		guest.Uuid = uuid.NewString()
	}
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = model.RSVPPending
	}
	repository := model.GuestRepository{DB: db}
	if err := repository.Create(&guest); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	return guest
}

func seedEvent(t *testing.T, db *gorm.DB, event model.Event) model.Event {
	t.Helper()

	if event.Uuid == "" {
		event.Uuid = uuid.NewString()
	}
	repository := model.EventRepository{DB: db}
	if err := repository.Create(&event); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	return event
}

type sentEmail struct {
	address string
	subject string
	body    string
}

type SMTPMock struct {
	mu        sync.Mutex
	sent      []sentEmail
	delivered chan sentEmail
}

func newSMTPMock() *SMTPMock {
	return &SMTPMock{delivered: make(chan sentEmail, 8)}
}

func (s *SMTPMock) Send(address, subject, body string) error {
	s.mu.Lock()
	s.sent = append(s.sent, sentEmail{address, subject, body})
	s.mu.Unlock()

	s.delivered <- sentEmail{address, subject, body}
	return nil
}

func (s *SMTPMock) From() string {
	return "noreply@example.com"
}

func (s *SMTPMock) wait(t *testing.T) sentEmail {
	t.Helper()
	select {
	case email := <-s.delivered:
		return email
	case <-time.After(time.Second):
		t.Fatal("Expected an email to be sent")
		return sentEmail{}
	}
}
