package cmd

import (
	"fmt"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/spf13/cobra"
)

type walletView struct {
	PublicKey        string `json:"public_key"`
	Label            string `json:"label"`
	Network          string `json:"network"`
	TokenMintOption  string `json:"token_mint_option"`
	TokenMintAddress string `json:"token_mint_address"`
	GasFee           uint64 `json:"gas_fee"`
}

func newWalletView(wallet domain.ActiveWallet) walletView {
	return walletView{
		PublicKey:        wallet.PublicKey,
		Label:            wallet.Label,
		Network:          string(wallet.Network),
		TokenMintOption:  string(wallet.TokenMintOption),
		TokenMintAddress: wallet.TokenMintAddress,
		GasFee:           wallet.GasFee,
	}
}

func newWalletsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "wallets",
		Aliases: []string{"ls"},
		Short:   "List active monitored wallets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wallets := app.session.Snapshot().ActiveWallets

			if asJSON {
				views := make([]walletView, 0, len(wallets))
				for _, wallet := range wallets {
					views = append(views, newWalletView(wallet))
				}
				return writeJSON(cmd.OutOrStdout(), views)
			}

			if len(wallets) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No active wallets.")
				return err
			}

			for _, wallet := range wallets {
				token := "SOL"
				if wallet.TokenMintAddress != "" {
					token = wallet.TokenMintAddress
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", wallet.PublicKey, orDash(wallet.Label), wallet.Network, token)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
