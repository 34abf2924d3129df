package domain

type ActiveWallet struct {
	PublicKey        string
	Label            string
	Network          Network
	TokenMintOption  TokenMintOption
	TokenMintAddress string
	GasFee           uint64
}

// NewActiveWallet records a confirmed monitoring session for publicKey using
// the config that started it.
func NewActiveWallet(publicKey string, cfg SessionConfig) ActiveWallet {
	return ActiveWallet{
		PublicKey:        publicKey,
		Label:            cfg.Label,
		Network:          cfg.Network,
		TokenMintOption:  cfg.TokenMintOption,
		TokenMintAddress: cfg.EffectiveTokenMintAddress(),
		GasFee:           cfg.GasFee(),
	}
}

// Registry is the ordered set of active wallets keyed by PublicKey. Methods
// return new slices and never mutate the receiver.
type Registry []ActiveWallet

func (r Registry) Contains(publicKey string) bool {
	for _, wallet := range r {
		if wallet.PublicKey == publicKey {
			return true
		}
	}
	return false
}

// With appends wallet. An entry already holding the same public key is
// replaced in place so keys stay unique.
func (r Registry) With(wallet ActiveWallet) Registry {
	next := make(Registry, 0, len(r)+1)
	replaced := false
	for _, existing := range r {
		if existing.PublicKey == wallet.PublicKey {
			if !replaced {
				next = append(next, wallet)
				replaced = true
			}
			continue
		}
		next = append(next, existing)
	}
	if !replaced {
		next = append(next, wallet)
	}
	return next
}

// Without drops every entry with publicKey. The bool reports whether any
// entry was removed.
func (r Registry) Without(publicKey string) (Registry, bool) {
	next := make(Registry, 0, len(r))
	removed := false
	for _, wallet := range r {
		if wallet.PublicKey == publicKey {
			removed = true
			continue
		}
		next = append(next, wallet)
	}
	return next, removed
}

func (r Registry) PublicKeys() []string {
	keys := make([]string, 0, len(r))
	for _, wallet := range r {
		keys = append(keys, wallet.PublicKey)
	}
	return keys
}

func (r Registry) Clone() Registry {
	if r == nil {
		return Registry{}
	}
	return append(Registry{}, r...)
}
