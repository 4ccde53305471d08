package webserver

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/mfdez/evermore/internal/model"
	"github.com/mfdez/evermore/internal/party"
)

// The admin summary is deliberately minimal; guest-facing email bodies live
// with the template editor, outside this backend.
var notificationTemplate = template.Must(template.New("rsvp-notification").Parse(`
<p>An RSVP was submitted for invite code <strong>{{.InviteCode}}</strong>.</p>
<table>
	<tr><th>Guest</th><th>Email</th><th>Attending</th><th>Dietary notes</th></tr>
	{{range .Guests}}
	<tr><td>{{.Name}}</td><td>{{.Email}}</td><td>{{.Status}}</td><td>{{.Dietary}}</td></tr>
	{{end}}
</table>
`))

type notificationRow struct {
	Name    string
	Email   string
	Status  string
	Dietary string
}

// EmailNotifier emails a summary of every stored RSVP submission to the
// admin mailbox
type EmailNotifier struct {
	sender   Sender
	to       string
	siteName string
}

func NewEmailNotifier(sender Sender, to, siteName string) *EmailNotifier {
	return &EmailNotifier{
		sender:   sender,
		to:       to,
		siteName: siteName,
	}
}

func (n *EmailNotifier) RSVPReceived(p party.Party) error {
	if n.to == "" {
		return nil
	}

	rows := []notificationRow{newNotificationRow(p.Primary)}
	if p.Companion != nil {
		rows = append(rows, newNotificationRow(*p.Companion))
	}

	var body bytes.Buffer
	err := notificationTemplate.Execute(&body, struct {
		InviteCode string
		Guests     []notificationRow
	}{
		InviteCode: p.InviteCode,
		Guests:     rows,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("%s RSVP: %s", n.siteName, p.Primary.FullName())
	return n.sender.Send(n.to, subject, body.String())
}

func newNotificationRow(g model.Guest) notificationRow {
	row := notificationRow{
		Name:   g.FullName(),
		Email:  g.Email,
		Status: g.RSVPStatus,
	}
	if g.DietaryRestrictions != nil {
		row.Dietary = *g.DietaryRestrictions
	}
	return row
}
