package domain

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const publicKeyLength = 32

// ValidateAddress checks that raw is a base58 encoded 32 byte public key.
func ValidateAddress(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fmt.Errorf("address is required")
	}

	decoded := base58.Decode(trimmed)
	if len(decoded) == 0 {
		return fmt.Errorf("address %q is not base58", raw)
	}
	if len(decoded) != publicKeyLength {
		return fmt.Errorf("address %q decodes to %d bytes, want %d", raw, len(decoded), publicKeyLength)
	}

	return nil
}

// ShortAddress abbreviates long keys for terminal display.
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:4] + ".." + address[len(address)-4:]
}
