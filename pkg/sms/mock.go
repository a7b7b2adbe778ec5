package sms

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Mock is the demo provider used when Twilio credentials are not configured.
// It logs the message, waits a moment to mimic network latency, and always
// reports success.
type Mock struct {
	Logger *logrus.Logger
	Delay  time.Duration
}

func NewMock(logger *logrus.Logger) *Mock {
	return &Mock{Logger: logger, Delay: 500 * time.Millisecond}
}

func (m *Mock) Send(ctx context.Context, msg Message) (Receipt, error) {
	if m.Logger != nil {
		m.Logger.WithFields(logrus.Fields{
			"to":       msg.To,
			"category": msg.Category,
		}).Infof("SMS alert: %s", msg.Body)
	}
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
		}
	}
	return Receipt{MessageID: "mock-" + uuid.NewString(), Status: "sent"}, nil
}
