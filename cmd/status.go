package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/solana-autotransfer-cli/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var offline bool
	var fullKeys bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Render the dashboard: form, active wallets and the latest feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !offline {
				err := runRemoteSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching transactions...", true, func(ctx context.Context) error {
					_, err := app.feed.Tick(ctx)
					return err
				})
				if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: transaction feed unavailable: %v\n", err)
				}
			}

			output, err := app.renderer(dashboard.RenderInput{
				Session: app.session.Snapshot(),
				Feed:    app.feed.Snapshot(),
			}, dashboard.RenderOptions{
				Now:          app.now(),
				FeedInterval: app.feed.Interval(),
				FullKeys:     fullKeys,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Skip fetching the transaction feed")
	cmd.Flags().BoolVar(&fullKeys, "full-keys", false, "Do not shorten addresses")

	return cmd
}
