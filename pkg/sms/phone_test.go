package sms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aidigitalcashout-cell/v0-ecobank/pkg/sms"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"local with leading zero", "08031234567", "+2348031234567"},
		{"bare country prefix", "2348031234567", "+2348031234567"},
		{"already international", "+2348031234567", "+2348031234567"},
		{"spaces stripped", "0803 123 4567", "+2348031234567"},
		{"hyphens stripped", "0803-123-4567", "+2348031234567"},
		{"formatted international", "+234 803 123 4567", "+2348031234567"},
		{"no marker gets prefixed", "8031234567", "+2348031234567"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sms.NormalizePhone(tc.raw, "234"))
		})
	}
}

func TestNormalizePhoneDefaultPrefix(t *testing.T) {
	assert.Equal(t, "+2348031234567", sms.NormalizePhone("08031234567", ""))
}
