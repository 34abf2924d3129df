package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/spf13/cobra"
)

func newStopCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop <public-key>",
		Short: "Stop monitoring a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			publicKey := strings.TrimSpace(args[0])

			var result application.StopResult
			err := runRemoteSpinner(cmd.Context(), cmd.ErrOrStderr(), "Stopping monitoring...", true, func(ctx context.Context) error {
				var err error
				result, err = app.session.Stop(ctx, publicKey)
				return err
			})
			if err != nil {
				return err
			}

			if !result.Removed {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "stop acknowledged: %s was not an active wallet\n", publicKey)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "monitoring stopped: %s\n", publicKey)
			return err
		},
	}
}
