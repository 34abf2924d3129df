package domain

import (
	"fmt"
	"strings"
)

type Network string
type TokenMintOption string
type GasFeeTier string

const (
	NetworkDevnet  Network = "devnet"
	NetworkTestnet Network = "testnet"
	NetworkMainnet Network = "mainnet"

	TokenMintNative TokenMintOption = "native"
	TokenMintCustom TokenMintOption = "custom"

	GasFeeLow    GasFeeTier = "low"
	GasFeeMedium GasFeeTier = "medium"
	GasFeeFast   GasFeeTier = "fast"
)

// Micro-fee units sent to the remote service for each tier.
const (
	GasFeeLowMicro    uint64 = 5000
	GasFeeMediumMicro uint64 = 10000
	GasFeeFastMicro   uint64 = 20000
)

type SessionConfig struct {
	Seed                  Seed
	SecureWalletPublicKey string
	Network               Network
	TokenMintOption       TokenMintOption
	TokenMintAddress      string
	GasFeeTier            GasFeeTier
	Label                 string
}

// DefaultSessionConfig mirrors the form defaults shown to a fresh operator.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Network:         NetworkDevnet,
		TokenMintOption: TokenMintNative,
		GasFeeTier:      GasFeeMedium,
	}
}

// EffectiveTokenMintAddress is the address sent on start: empty under native,
// whatever was entered under custom.
func (c SessionConfig) EffectiveTokenMintAddress() string {
	if c.TokenMintOption != TokenMintCustom {
		return ""
	}
	return c.TokenMintAddress
}

func (c SessionConfig) GasFee() uint64 {
	return c.GasFeeTier.MicroFee()
}

// Cluster returns the network name understood by the remote service.
func (n Network) Cluster() string {
	if n == NetworkMainnet {
		return "mainnet-beta"
	}
	return string(n)
}

func ParseNetwork(raw string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "devnet":
		return NetworkDevnet, nil
	case "testnet":
		return NetworkTestnet, nil
	case "mainnet", "mainnet-beta":
		return NetworkMainnet, nil
	default:
		return "", fmt.Errorf("unsupported network %q", raw)
	}
}

func ParseTokenMintOption(raw string) (TokenMintOption, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "native", "sol":
		return TokenMintNative, nil
	case "custom":
		return TokenMintCustom, nil
	default:
		return "", fmt.Errorf("unsupported token mint option %q", raw)
	}
}

// DecodeNetwork reads a stored network name. Unknown values decode as empty
// so restore can fall back to the session default.
func DecodeNetwork(raw string) Network {
	network, err := ParseNetwork(raw)
	if err != nil {
		return ""
	}
	return network
}

// DecodeTokenMintOption is the stored-value counterpart of
// ParseTokenMintOption; unknown values decode as empty.
func DecodeTokenMintOption(raw string) TokenMintOption {
	option, err := ParseTokenMintOption(raw)
	if err != nil {
		return ""
	}
	return option
}

func ParseGasFeeTier(raw string) (GasFeeTier, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return GasFeeLow, nil
	case "medium":
		return GasFeeMedium, nil
	case "fast":
		return GasFeeFast, nil
	default:
		return "", fmt.Errorf("unsupported gas fee tier %q", raw)
	}
}

func (t GasFeeTier) MicroFee() uint64 {
	switch t {
	case GasFeeLow:
		return GasFeeLowMicro
	case GasFeeFast:
		return GasFeeFastMicro
	default:
		return GasFeeMediumMicro
	}
}

// GasFeeTierForMicroFee maps a stored fee back to its tier. Unknown values
// fall back to medium.
func GasFeeTierForMicroFee(fee uint64) GasFeeTier {
	switch fee {
	case GasFeeLowMicro:
		return GasFeeLow
	case GasFeeFastMicro:
		return GasFeeFast
	default:
		return GasFeeMedium
	}
}

// ValidateForStart reports whether the config can be sent to start
// monitoring.
func (c SessionConfig) ValidateForStart() error {
	if c.Seed.IsEmpty() {
		return ErrEmptySeed
	}
	if c.TokenMintOption == TokenMintCustom && strings.TrimSpace(c.TokenMintAddress) == "" {
		return fmt.Errorf("%w: custom token requires a mint address", ErrInvalidInput)
	}
	return nil
}
