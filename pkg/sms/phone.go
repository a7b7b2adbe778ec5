package sms

import "strings"

// DefaultCountryPrefix is the numeric dial prefix used when none is configured.
const DefaultCountryPrefix = "234"

// NormalizePhone converts a local-format phone number to international format:
// whitespace and hyphens are stripped; a single leading zero is replaced by the
// country prefix; a bare prefix gets its plus sign; anything else without a
// plus is prefixed wholesale.
func NormalizePhone(raw, prefix string) string {
	if prefix == "" {
		prefix = DefaultCountryPrefix
	}
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '-' {
			return -1
		}
		return r
	}, raw)

	switch {
	case strings.HasPrefix(cleaned, "0"):
		return "+" + prefix + cleaned[1:]
	case strings.HasPrefix(cleaned, prefix):
		return "+" + cleaned
	case !strings.HasPrefix(cleaned, "+"):
		return "+" + prefix + cleaned
	}
	return cleaned
}
