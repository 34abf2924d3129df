package application

import (
	"testing"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAddress = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

func TestConfigInputCommandParsesFields(t *testing.T) {
	t.Parallel()

	cmd, err := ConfigInput{
		Seed:             ptr("  alpha   beta "),
		SecureWallet:     ptr(validAddress),
		Network:          ptr("mainnet-beta"),
		TokenMintOption:  ptr("sol"),
		TokenMintAddress: ptr(""),
		GasFee:           ptr("FAST"),
		Label:            ptr(" vault "),
	}.Command()
	require.NoError(t, err)

	cfg := cmd.applyTo(domain.DefaultSessionConfig())
	assert.Equal(t, domain.SessionConfig{
		Seed:                  domain.Seed{"alpha", "beta"},
		SecureWalletPublicKey: validAddress,
		Network:               domain.NetworkMainnet,
		TokenMintOption:       domain.TokenMintNative,
		TokenMintAddress:      "",
		GasFeeTier:            domain.GasFeeFast,
		Label:                 "vault",
	}, cfg)
}

func TestConfigInputCommandReportsAllProblems(t *testing.T) {
	t.Parallel()

	_, err := ConfigInput{
		SecureWallet:     ptr("not-an-address!"),
		Network:          ptr("localnet"),
		TokenMintOption:  ptr("wrapped"),
		TokenMintAddress: ptr("short"),
		GasFee:           ptr("ludicrous"),
	}.Command()
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	for _, fragment := range []string{
		"secure wallet",
		`unsupported network "localnet"`,
		`unsupported token mint option "wrapped"`,
		"token mint",
		`unsupported gas fee tier "ludicrous"`,
	} {
		assert.ErrorContains(t, err, fragment)
	}
}

func TestConfigInputCommandEmptyLeavesConfigUntouched(t *testing.T) {
	t.Parallel()

	cmd, err := ConfigInput{}.Command()
	require.NoError(t, err)
	assert.True(t, cmd.IsEmpty())
}

func TestStartConfigValidates(t *testing.T) {
	t.Parallel()

	_, err := StartConfig(domain.DefaultSessionConfig(), UpdateConfigCommand{})
	require.ErrorIs(t, err, domain.ErrEmptySeed)

	_, err = StartConfig(exampleConfig(), UpdateConfigCommand{TokenMintOption: ptr(domain.TokenMintCustom)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	cfg, err := StartConfig(exampleConfig(), UpdateConfigCommand{Label: ptr("override")})
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.Label)
	assert.Equal(t, domain.Seed{"alpha", "beta"}, cfg.Seed)
}
