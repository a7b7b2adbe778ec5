package sms

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Twilio wraps Twilio client configuration.
type Twilio struct {
	AccountSID    string
	AuthToken     string
	From          string
	CountryPrefix string
}

func NewTwilio(accountSID, authToken, from, countryPrefix string) *Twilio {
	return &Twilio{AccountSID: accountSID, AuthToken: authToken, From: from, CountryPrefix: countryPrefix}
}

// Configured reports whether provider credentials are present.
func (t *Twilio) Configured() bool {
	return t != nil && t.AccountSID != "" && t.AuthToken != "" && t.From != ""
}

// Send delivers one message via the Twilio REST API. The destination is
// normalized to international format before dispatch.
func (t *Twilio) Send(ctx context.Context, msg Message) (Receipt, error) {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: t.AccountSID,
		Password: t.AuthToken,
	})

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(t.From)
	params.SetTo(NormalizePhone(msg.To, t.CountryPrefix))
	params.SetBody(msg.Body)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		return Receipt{}, err
	}
	rcpt := Receipt{}
	if resp.Sid != nil {
		rcpt.MessageID = *resp.Sid
	}
	if resp.Status != nil {
		rcpt.Status = *resp.Status
	}
	return rcpt, nil
}
