package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/spf13/cobra"
)

type transactionView struct {
	Signature string  `json:"signature"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	Token     string  `json:"token"`
	Status    string  `json:"status"`
}

func newFeedCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Fetch the transaction feed once and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var transactions []domain.TransactionRecord
			err := runRemoteSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching transactions...", !asJSON, func(ctx context.Context) error {
				var err error
				transactions, err = app.feed.Tick(ctx)
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				views := make([]transactionView, 0, len(transactions))
				for _, tx := range transactions {
					views = append(views, transactionView{
						Signature: tx.Signature,
						From:      tx.From,
						To:        tx.To,
						Amount:    tx.Amount,
						Token:     tx.Token,
						Status:    string(tx.Status),
					})
				}
				return writeJSON(cmd.OutOrStdout(), views)
			}

			if len(transactions) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No transactions logged yet.")
				return err
			}

			for _, tx := range transactions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s -> %s\t%s %s\t%s\n",
					tx.Signature,
					tx.From,
					tx.To,
					strconv.FormatFloat(tx.Amount, 'f', -1, 64),
					tx.Token,
					tx.Status,
				)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
