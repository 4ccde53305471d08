package main

// Config stores the application configuration, read from environment
// variables
type Config struct {
	// Port defines the port number the web server listens on
	Port string `env:"PORT" env-default:"3000"`
	// DbPath points to the SQLite database file; defaults to a file under
	// the user's home directory
	DbPath string `env:"DB_PATH"`
	// SiteName is used in page titles and email senders
	SiteName string `env:"SITE_NAME" env-default:"Evermore"`
	// FQDN of the host serving the site, used to build links in emails
	FQDN string `env:"FQDN" env-default:"localhost:3000"`
	// JwtSecret is shared with the auth provider issuing session tokens
	JwtSecret string `env:"JWT_SECRET" env-required:"true"`
	// AdminEmails lists the addresses allowed into the back office
	AdminEmails []string `env:"ADMIN_EMAILS" env-separator:","`
	// NotifyEmail receives a summary of every RSVP submission
	NotifyEmail string `env:"NOTIFY_EMAIL"`
	// SmtpServer hostname; leaving it empty disables email sending
	SmtpServer string `env:"SMTP_SERVER"`
	// SmtpPort defines the port number of the SMTP server
	SmtpPort int `env:"SMTP_PORT" env-default:"587"`
	// SmtpUser is the user to authenticate against the SMTP server
	SmtpUser string `env:"SMTP_USER"`
	// SmtpPassword is the password to authenticate against the SMTP server
	SmtpPassword string `env:"SMTP_PASSWORD"`
}
