package wallet

import (
	"errors"
	"strings"
)

// ErrInvalidAddress marks an address that fails validation before any RPC
// call is made.
var ErrInvalidAddress = errors.New("invalid sui address")

const addressHexLen = 64

// NormalizeAddress canonicalizes a Sui address: lowercased, 0x-prefixed and
// left-padded to 64 hex digits. Short forms such as 0x2 are accepted.
func NormalizeAddress(address string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(address))
	trimmed = strings.TrimPrefix(trimmed, "0x")
	if trimmed == "" || len(trimmed) > addressHexLen {
		return "", ErrInvalidAddress
	}
	for _, r := range trimmed {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", ErrInvalidAddress
		}
	}
	return "0x" + strings.Repeat("0", addressHexLen-len(trimmed)) + trimmed, nil
}
