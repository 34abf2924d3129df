package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update the auto transfer form",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
	)

	return cmd
}

type configView struct {
	SeedWords             int    `json:"seed_words"`
	SecureWalletPublicKey string `json:"secure_wallet"`
	Network               string `json:"network"`
	TokenMintOption       string `json:"token_mint_option"`
	TokenMintAddress      string `json:"token_mint_address"`
	GasFee                string `json:"gas_fee"`
	GasFeeMicro           uint64 `json:"gas_fee_micro"`
	Label                 string `json:"label"`
	PublicKey             string `json:"public_key"`
}

func newConfigShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot := app.session.Snapshot()
			view := newConfigView(snapshot)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			return writeConfigText(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newConfigSetCmd(app *app) *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update form fields; a new seed is sent for key derivation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update, err := flags.input(cmd).Command()
			if err != nil {
				return err
			}
			if update.IsEmpty() {
				return errors.New("no fields to update; pass at least one flag")
			}

			if err := applyConfigUpdate(cmd, app, update); err != nil {
				return err
			}

			return writeConfigText(cmd.OutOrStdout(), newConfigView(app.session.Snapshot()))
		},
	}

	flags.register(cmd)

	return cmd
}

// applyConfigUpdate stores update and reports the derivation outcome on
// stderr. A failed derivation keeps the previous key and is not fatal.
func applyConfigUpdate(cmd *cobra.Command, app *app, update application.UpdateConfigCommand) error {
	var derivation *application.DerivationResult
	var derivationErr error

	err := runRemoteSpinner(cmd.Context(), cmd.ErrOrStderr(), "Deriving public key...", update.Seed != nil, func(ctx context.Context) error {
		_, derivation, derivationErr = app.session.UpdateConfig(ctx, update)
		return nil
	})
	if err != nil {
		return err
	}

	if derivation != nil && derivationErr != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: public key not updated: %v\n", derivationErr)
	}

	return nil
}

func newConfigView(snapshot application.SessionSnapshot) configView {
	cfg := snapshot.Config
	return configView{
		SeedWords:             len(cfg.Seed),
		SecureWalletPublicKey: cfg.SecureWalletPublicKey,
		Network:               string(cfg.Network),
		TokenMintOption:       string(cfg.TokenMintOption),
		TokenMintAddress:      cfg.TokenMintAddress,
		GasFee:                string(cfg.GasFeeTier),
		GasFeeMicro:           cfg.GasFee(),
		Label:                 cfg.Label,
		PublicKey:             snapshot.PublicKey,
	}
}

func writeConfigText(w io.Writer, view configView) error {
	seed := "not set"
	if view.SeedWords > 0 {
		seed = fmt.Sprintf("%d words", view.SeedWords)
	}
	token := view.TokenMintOption
	if view.TokenMintOption == string(domain.TokenMintCustom) {
		token += " " + orDash(view.TokenMintAddress)
	}

	_, err := fmt.Fprintf(w,
		"seed:\t%s\nsecure wallet:\t%s\nnetwork:\t%s\ntoken:\t%s\ngas fee:\t%s (%d)\nlabel:\t%s\npublic key:\t%s\n",
		seed,
		orDash(view.SecureWalletPublicKey),
		view.Network,
		token,
		view.GasFee, view.GasFeeMicro,
		orDash(view.Label),
		orDash(view.PublicKey),
	)
	return err
}

func writeJSON(w io.Writer, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(payload))
	return err
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
