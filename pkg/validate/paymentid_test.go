package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPayeerID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Valid Luhn number", "79927398713", true},
		{"Valid Luhn number with more digits", "2404815702", true},
		{"Broken checksum", "79927398710", false},
		{"Too short", "1234", false},
		{"Non-numeric", "79927a8713", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsPayeerID(tt.input))
		})
	}
}

func TestIsFaucetPayHash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"Lowercase hex", "a1b2c3d4e5f6", true},
		{"Uppercase hex", "A1B2C3D4E5F6", true},
		{"Digits only", "0123456789", true},
		{"Non-hex character", "a1b2c3d4g5", false},
		{"Too short", "a1b2c3", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsFaucetPayHash(tt.input))
		})
	}
}
