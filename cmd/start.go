package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *app) *cobra.Command {
	var flags configFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start monitoring with the stored form, after applying any field flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update, err := flags.input(cmd).Command()
			if err != nil {
				return err
			}
			if !update.IsEmpty() {
				if err := applyConfigUpdate(cmd, app, update); err != nil {
					return err
				}
			}

			cfg, err := application.StartConfig(app.session.Snapshot().Config, application.UpdateConfigCommand{})
			if err != nil {
				return err
			}

			var wallet domain.ActiveWallet
			err = runRemoteSpinner(cmd.Context(), cmd.ErrOrStderr(), "Starting monitoring...", !asJSON, func(ctx context.Context) error {
				var err error
				wallet, err = app.session.Start(ctx, cfg)
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), newWalletView(wallet))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "monitoring started: %s\n", wallet.PublicKey)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
