package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const minTransactionIDLen = 8

// IsPayeerID reports whether s looks like a Payeer operation id: numeric
// with a valid Luhn checksum.
func IsPayeerID(s string) bool {
	if len(s) < minTransactionIDLen {
		return false
	}
	return goluhn.Validate(s) == nil
}

// IsFaucetPayHash reports whether s looks like a FaucetPay transaction
// hash: hex characters only.
func IsFaucetPayHash(s string) bool {
	if len(s) < minTransactionIDLen {
		return false
	}
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
