package sms

import (
	"fmt"
	"strings"
)

const cardRule = "━━━━━━━━━━━━━━━"

// DebitAlert builds the text sent to the account holder after money leaves the
// account.
func DebitAlert(amount float64, recipient string, balance float64, reference string) string {
	return strings.Join([]string{
		"Debit Alert",
		"Amt: " + FormatNaira(amount),
		"To: " + recipient,
		"Avail Bal: " + FormatNaira(balance),
		"Ref: " + reference,
		"Ecobank Mobile",
	}, "\n")
}

// CreditAlert builds the text sent to a recipient after money enters their
// account. Balance is zero when the recipient's balance is unknown.
func CreditAlert(amount float64, sender string, balance float64, reference string) string {
	return strings.Join([]string{
		"Credit Alert",
		"Amt: " + FormatNaira(amount),
		"From: " + sender,
		"Avail Bal: " + FormatNaira(balance),
		"Ref: " + reference,
		"Ecobank Mobile",
	}, "\n")
}

// Card holds the fields of a shareable account business card.
type Card struct {
	Sender        string
	AccountNumber string
	Bank          string
	Phone         string
	Email         string
}

// BusinessCard builds the multi-line card message; empty fields are omitted.
func BusinessCard(c Card) string {
	lines := []string{"BUSINESS CARD", cardRule, "From: " + c.Sender}
	if c.Bank != "" {
		lines = append(lines, "Bank: "+c.Bank)
	}
	if c.AccountNumber != "" {
		lines = append(lines, "Account: "+c.AccountNumber)
	}
	if c.Phone != "" {
		lines = append(lines, "Phone: "+c.Phone)
	}
	if c.Email != "" {
		lines = append(lines, "Email: "+c.Email)
	}
	lines = append(lines, cardRule, "Sent via Ecobank Mobile")
	return strings.Join(lines, "\n")
}

// FormatNaira renders an amount as a naira string with thousands separators,
// e.g. 20000 -> "₦20,000.00".
func FormatNaira(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := "₦" + b.String() + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}
