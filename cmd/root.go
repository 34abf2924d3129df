package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sat",
		Short:         "Solana Auto Transfer CLI (sat): manage monitored wallets",
		Long:          "sat keeps the auto transfer form (seed, secure wallet, network, token, gas fee, label), starts and stops remote monitoring sessions and follows the transaction feed from the terminal or a local HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(app),
		newDeriveCmd(app),
		newStartCmd(app),
		newStopCmd(app),
		newWalletsCmd(app),
		newFeedCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
