package email

// Provider sends transactional mail. Delivery failures are reported to
// the caller but never abort the surrounding request.
type Provider interface {
	// Send delivers a single message.
	Send(email *Email) error

	// SendWelcome greets a freshly signed-up user.
	SendWelcome(to, name string) error

	// SendPurchaseReceipt confirms a completed checkout.
	SendPurchaseReceipt(to string, gameNames []string, total float64) error
}
