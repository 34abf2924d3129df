package cmd

import (
	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/spf13/cobra"
)

// configFlags are the form fields shared by "config set" and "start". Only
// flags the user actually passed end up in the input.
type configFlags struct {
	seed         string
	secureWallet string
	network      string
	token        string
	tokenMint    string
	gasFee       string
	label        string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.seed, "seed", "", "Seed phrase, words separated by spaces")
	cmd.Flags().StringVar(&f.secureWallet, "secure-wallet", "", "Secure wallet public key that receives transfers")
	cmd.Flags().StringVar(&f.network, "network", "", "Network: devnet, testnet or mainnet")
	cmd.Flags().StringVar(&f.token, "token", "", "Token mint option: native or custom")
	cmd.Flags().StringVar(&f.tokenMint, "token-mint", "", "Custom token mint address")
	cmd.Flags().StringVar(&f.gasFee, "gas-fee", "", "Gas fee tier: low, medium or fast")
	cmd.Flags().StringVar(&f.label, "label", "", "Label for the monitored wallet")
}

func (f *configFlags) input(cmd *cobra.Command) application.ConfigInput {
	var in application.ConfigInput
	flags := cmd.Flags()

	if flags.Changed("seed") {
		in.Seed = &f.seed
	}
	if flags.Changed("secure-wallet") {
		in.SecureWallet = &f.secureWallet
	}
	if flags.Changed("network") {
		in.Network = &f.network
	}
	if flags.Changed("token") {
		in.TokenMintOption = &f.token
	}
	if flags.Changed("token-mint") {
		in.TokenMintAddress = &f.tokenMint
	}
	if flags.Changed("gas-fee") {
		in.GasFee = &f.gasFee
	}
	if flags.Changed("label") {
		in.Label = &f.label
	}

	return in
}
