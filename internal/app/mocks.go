package app

import "gamestore_backend/internal/email"

// MockEmailProvider swallows all mail. Used in tests and when SMTP is
// not configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error { return nil }

func (m *MockEmailProvider) SendWelcome(to, name string) error { return nil }

func (m *MockEmailProvider) SendPurchaseReceipt(to string, gameNames []string, total float64) error {
	return nil
}
