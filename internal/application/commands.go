package application

import "github.com/bnema/solana-autotransfer-cli/internal/domain"

// UpdateConfigCommand carries the form fields to change. Nil fields are left
// untouched.
type UpdateConfigCommand struct {
	Seed                  *domain.Seed
	SecureWalletPublicKey *string
	Network               *domain.Network
	TokenMintOption       *domain.TokenMintOption
	TokenMintAddress      *string
	GasFeeTier            *domain.GasFeeTier
	Label                 *string
}

func (c UpdateConfigCommand) IsEmpty() bool {
	return c.Seed == nil &&
		c.SecureWalletPublicKey == nil &&
		c.Network == nil &&
		c.TokenMintOption == nil &&
		c.TokenMintAddress == nil &&
		c.GasFeeTier == nil &&
		c.Label == nil
}

func (c UpdateConfigCommand) applyTo(cfg domain.SessionConfig) domain.SessionConfig {
	if c.Seed != nil {
		cfg.Seed = c.Seed.Clone()
	}
	if c.SecureWalletPublicKey != nil {
		cfg.SecureWalletPublicKey = *c.SecureWalletPublicKey
	}
	if c.Network != nil {
		cfg.Network = *c.Network
	}
	if c.TokenMintOption != nil {
		cfg.TokenMintOption = *c.TokenMintOption
	}
	if c.TokenMintAddress != nil {
		cfg.TokenMintAddress = *c.TokenMintAddress
	}
	if c.GasFeeTier != nil {
		cfg.GasFeeTier = *c.GasFeeTier
	}
	if c.Label != nil {
		cfg.Label = *c.Label
	}
	return cfg
}
