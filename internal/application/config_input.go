package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
)

// ConfigInput holds raw form values as typed by an operator. Nil fields are
// left untouched.
type ConfigInput struct {
	Seed             *string
	SecureWallet     *string
	Network          *string
	TokenMintOption  *string
	TokenMintAddress *string
	GasFee           *string
	Label            *string
}

// Command validates the input and converts it to an UpdateConfigCommand.
// All problems are reported together, wrapped in domain.ErrInvalidInput.
func (in ConfigInput) Command() (UpdateConfigCommand, error) {
	var (
		cmd  UpdateConfigCommand
		errs []error
	)

	if in.Seed != nil {
		seed := domain.ParseSeed(*in.Seed)
		cmd.Seed = &seed
	}

	if in.SecureWallet != nil {
		wallet := strings.TrimSpace(*in.SecureWallet)
		if wallet != "" {
			if err := domain.ValidateAddress(wallet); err != nil {
				errs = append(errs, fmt.Errorf("secure wallet: %w", err))
			}
		}
		cmd.SecureWalletPublicKey = &wallet
	}

	if in.Network != nil {
		network, err := domain.ParseNetwork(*in.Network)
		if err != nil {
			errs = append(errs, err)
		} else {
			cmd.Network = &network
		}
	}

	if in.TokenMintOption != nil {
		option, err := domain.ParseTokenMintOption(*in.TokenMintOption)
		if err != nil {
			errs = append(errs, err)
		} else {
			cmd.TokenMintOption = &option
		}
	}

	if in.TokenMintAddress != nil {
		mint := strings.TrimSpace(*in.TokenMintAddress)
		if mint != "" {
			if err := domain.ValidateAddress(mint); err != nil {
				errs = append(errs, fmt.Errorf("token mint: %w", err))
			}
		}
		cmd.TokenMintAddress = &mint
	}

	if in.GasFee != nil {
		tier, err := domain.ParseGasFeeTier(*in.GasFee)
		if err != nil {
			errs = append(errs, err)
		} else {
			cmd.GasFeeTier = &tier
		}
	}

	if in.Label != nil {
		label := strings.TrimSpace(*in.Label)
		cmd.Label = &label
	}

	if len(errs) > 0 {
		return UpdateConfigCommand{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}
	return cmd, nil
}

// StartConfig merges overrides into base without persisting them and checks
// the result can be started.
func StartConfig(base domain.SessionConfig, overrides UpdateConfigCommand) (domain.SessionConfig, error) {
	cfg := overrides.applyTo(base)
	if err := cfg.ValidateForStart(); err != nil {
		return domain.SessionConfig{}, err
	}
	return cfg, nil
}
