package email

// Email is a single outgoing message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// SMTPConfig holds the SMTP provider settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
