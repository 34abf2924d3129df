package domain

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveTokenMintAddressIgnoresAddressUnderNative(t *testing.T) {
	t.Parallel()

	cfg := SessionConfig{TokenMintOption: TokenMintNative, TokenMintAddress: "Mint111"}
	assert.Equal(t, "", cfg.EffectiveTokenMintAddress())

	cfg.TokenMintOption = TokenMintCustom
	assert.Equal(t, "Mint111", cfg.EffectiveTokenMintAddress())
}

func TestGasFeeTierMapping(t *testing.T) {
	tests := []struct {
		name string
		tier GasFeeTier
		want uint64
	}{
		{name: "low", tier: GasFeeLow, want: 5000},
		{name: "medium", tier: GasFeeMedium, want: 10000},
		{name: "fast", tier: GasFeeFast, want: 20000},
		{name: "unknown tier falls back to medium", tier: GasFeeTier("turbo"), want: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tier.MicroFee())
		})
	}

	for _, tier := range []GasFeeTier{GasFeeLow, GasFeeMedium, GasFeeFast} {
		assert.Equal(t, tier, GasFeeTierForMicroFee(tier.MicroFee()))
	}
	assert.Equal(t, GasFeeMedium, GasFeeTierForMicroFee(1234))
}

func TestParseEnumsAcceptLegacyAliases(t *testing.T) {
	t.Parallel()

	network, err := ParseNetwork("mainnet-beta")
	require.NoError(t, err)
	assert.Equal(t, NetworkMainnet, network)
	assert.Equal(t, "mainnet-beta", network.Cluster())
	assert.Equal(t, "devnet", NetworkDevnet.Cluster())

	option, err := ParseTokenMintOption("sol")
	require.NoError(t, err)
	assert.Equal(t, TokenMintNative, option)

	_, err = ParseNetwork("localnet")
	assert.ErrorContains(t, err, "unsupported network")
	_, err = ParseGasFeeTier("turbo")
	assert.ErrorContains(t, err, "unsupported gas fee tier")
}

func TestDecodeStoredEnums(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NetworkMainnet, DecodeNetwork("mainnet-beta"))
	assert.Equal(t, NetworkTestnet, DecodeNetwork(" testnet "))
	assert.Equal(t, Network(""), DecodeNetwork("localnet"))
	assert.Equal(t, Network(""), DecodeNetwork(""))

	assert.Equal(t, TokenMintNative, DecodeTokenMintOption("sol"))
	assert.Equal(t, TokenMintCustom, DecodeTokenMintOption("custom"))
	assert.Equal(t, TokenMintOption(""), DecodeTokenMintOption("wrapped"))
}

func TestParseSeed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Seed{"alpha", "beta"}, ParseSeed("  alpha   beta "))
	assert.Nil(t, ParseSeed("   "))
	assert.True(t, ParseSeed("").IsEmpty())
	assert.Equal(t, "alpha beta", Seed{"alpha", "beta"}.String())
	assert.True(t, Seed{"a", "b"}.Equal(Seed{"a", "b"}))
	assert.False(t, Seed{"a", "b"}.Equal(Seed{"b", "a"}))
}

func TestSeedIsMnemonic(t *testing.T) {
	t.Parallel()

	valid := ParseSeed("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	assert.True(t, valid.IsMnemonic())
	assert.False(t, Seed{"alpha", "beta"}.IsMnemonic())
	assert.False(t, Seed(nil).IsMnemonic())
}

func TestNewActiveWalletCopiesConfig(t *testing.T) {
	t.Parallel()

	cfg := SessionConfig{
		Seed:             Seed{"alpha", "beta"},
		Network:          NetworkDevnet,
		TokenMintOption:  TokenMintNative,
		TokenMintAddress: "ignored",
		GasFeeTier:       GasFeeMedium,
		Label:            "L1",
	}

	assert.Equal(t, ActiveWallet{
		PublicKey:        "pk-1",
		Label:            "L1",
		Network:          NetworkDevnet,
		TokenMintOption:  TokenMintNative,
		TokenMintAddress: "",
		GasFee:           10000,
	}, NewActiveWallet("pk-1", cfg))
}

func TestRegistryWithKeepsPublicKeysUnique(t *testing.T) {
	t.Parallel()

	registry := Registry{}.
		With(ActiveWallet{PublicKey: "a", Label: "first"}).
		With(ActiveWallet{PublicKey: "b"}).
		With(ActiveWallet{PublicKey: "a", Label: "second"})

	assert.Equal(t, []string{"a", "b"}, registry.PublicKeys())
	assert.Equal(t, "second", registry[0].Label)
}

func TestRegistryWithoutIsIdempotent(t *testing.T) {
	t.Parallel()

	original := Registry{{PublicKey: "a"}, {PublicKey: "b"}}

	once, removed := original.Without("a")
	assert.True(t, removed)
	assert.Equal(t, []string{"b"}, once.PublicKeys())

	twice, removed := once.Without("a")
	assert.False(t, removed)
	assert.Equal(t, once, twice)

	assert.Equal(t, []string{"a", "b"}, original.PublicKeys())
}

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	valid := base58.Encode(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, ValidateAddress(valid))

	assert.ErrorContains(t, ValidateAddress(""), "address is required")
	assert.ErrorContains(t, ValidateAddress("0OIl"), "not base58")
	assert.ErrorContains(t, ValidateAddress(base58.Encode([]byte{1, 2, 3})), "decodes to 3 bytes")
}

func TestShortAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", ShortAddress("short"))
	assert.Equal(t, "ABCD..WXYZ", ShortAddress("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
}

func TestPersistedStateCloneIsIndependent(t *testing.T) {
	t.Parallel()

	state := PersistedState{
		Config:        SessionConfig{Seed: Seed{"alpha"}},
		ActiveWallets: Registry{{PublicKey: "a"}},
	}
	clone := state.Clone()
	clone.Config.Seed[0] = "changed"
	clone.ActiveWallets[0].PublicKey = "changed"

	assert.Equal(t, "alpha", state.Config.Seed[0])
	assert.Equal(t, "a", state.ActiveWallets[0].PublicKey)
}
