package infrastructure

// NoEmail is used when no SMTP configuration has been provided, disabling
// every email-dependent feature
type NoEmail struct {
}

func (s *NoEmail) Send(address, subject, body string) error {
	return nil
}

func (s *NoEmail) From() string {
	return ""
}
