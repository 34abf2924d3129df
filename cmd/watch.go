package cmd

import (
	"github.com/bnema/solana-autotransfer-cli/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	var fullKeys bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live dashboard refreshed by the transaction feed poller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handle := app.feed.Start(cmd.Context())
			defer handle.Stop()
			app.session.DeriveRestoredKey(cmd.Context())

			return dashboard.Watch(cmd.Context(), app.session, app.feed, dashboard.WatchOptions{
				Input:        cmd.InOrStdin(),
				Output:       cmd.OutOrStdout(),
				FeedInterval: app.feed.Interval(),
				FullKeys:     fullKeys,
				Now:          app.now,
			})
		},
	}

	cmd.Flags().BoolVar(&fullKeys, "full-keys", false, "Do not shorten addresses")

	return cmd
}
