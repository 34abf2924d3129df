package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/spf13/cobra"
)

func newDeriveCmd(app *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the public key for the stored seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var result application.DerivationResult
			err := runRemoteSpinner(cmd.Context(), cmd.ErrOrStderr(), "Deriving public key...", !quiet, func(ctx context.Context) error {
				var err error
				result, err = app.session.RefreshPublicKey(ctx)
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.PublicKey)
			return err
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not draw a spinner")

	return cmd
}
