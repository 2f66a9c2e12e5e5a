package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP.
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	m.SetAddressHeader("From", from, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %v: %w", email.To, err)
	}
	return nil
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Welcome to Game Store",
		Body:    fmt.Sprintf("Hi %s,\n\nYour account is ready. Happy gaming!\n", name),
	})
}

func (p *SMTPProvider) SendPurchaseReceipt(to string, gameNames []string, total float64) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Your purchase receipt",
		Body: fmt.Sprintf(
			"Thank you for your purchase.\n\nGames: %s\nTotal charged: %.2f\n",
			strings.Join(gameNames, ", "), total,
		),
	})
}
