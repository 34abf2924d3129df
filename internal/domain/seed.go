package domain

import (
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// Seed is the ordered list of recovery words. It is forwarded to the remote
// service and never used for signing locally.
type Seed []string

// ParseSeed splits a space separated phrase into words.
func ParseSeed(phrase string) Seed {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return nil
	}
	return Seed(words)
}

func (s Seed) IsEmpty() bool {
	return len(s) == 0
}

func (s Seed) String() string {
	return strings.Join(s, " ")
}

func (s Seed) Equal(other Seed) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Seed) Clone() Seed {
	if s == nil {
		return nil
	}
	return append(Seed(nil), s...)
}

// IsMnemonic reports whether the words form a valid BIP-39 mnemonic. The
// remote service accepts any phrase; this only feeds operator warnings.
func (s Seed) IsMnemonic() bool {
	if s.IsEmpty() {
		return false
	}
	return bip39.IsMnemonicValid(s.String())
}
