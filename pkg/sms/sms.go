package sms

import "context"

// Category classifies an outbound text message.
type Category string

const (
	CategoryDebit        Category = "debit"
	CategoryCredit       Category = "credit"
	CategoryBalance      Category = "balance"
	CategoryNotification Category = "notification"
	CategoryGeneral      Category = "general"
)

// Message is one outbound text.
type Message struct {
	To       string
	Body     string
	Category Category
}

// Receipt reports provider acceptance of a message.
type Receipt struct {
	MessageID string
	Status    string
}

// Provider sends text messages. Implementations resolve once the message is
// accepted by the carrier side; a real provider can fail, the mock never does.
type Provider interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}
