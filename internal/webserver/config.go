package webserver

type Config struct {
	SiteName string
	// FQDN of the host serving the site, used to build links in emails
	FQDN      string
	JwtSecret []byte
	// AdminEmails is the allow-list granting back-office access
	AdminEmails []string
	// NotifyEmail is the admin mailbox receiving RSVP submission summaries
	NotifyEmail string
}

// Sender is the transactional email collaborator
type Sender interface {
	From() string
	Send(address, subject, body string) error
}
