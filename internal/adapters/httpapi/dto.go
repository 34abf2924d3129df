package httpapi

import (
	"time"

	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/bnema/solana-autotransfer-cli/internal/domain"
)

// configRequest mirrors the form. Omitted fields are left untouched.
type configRequest struct {
	Seed                  *string `json:"seed,omitempty"`
	SecureWalletPublicKey *string `json:"secureWalletPublicKey,omitempty"`
	Network               *string `json:"network,omitempty"`
	TokenMintOption       *string `json:"tokenMintOption,omitempty"`
	TokenMintAddress      *string `json:"tokenMintAddress,omitempty"`
	GasFee                *string `json:"gasFee,omitempty"`
	Label                 *string `json:"label,omitempty"`
}

func (r configRequest) input() application.ConfigInput {
	return application.ConfigInput{
		Seed:             r.Seed,
		SecureWallet:     r.SecureWalletPublicKey,
		Network:          r.Network,
		TokenMintOption:  r.TokenMintOption,
		TokenMintAddress: r.TokenMintAddress,
		GasFee:           r.GasFee,
		Label:            r.Label,
	}
}

// configResponse never carries the seed itself, only its size.
type configResponse struct {
	SeedWords             int    `json:"seedWords"`
	SecureWalletPublicKey string `json:"secureWalletPublicKey"`
	Network               string `json:"network"`
	TokenMintOption       string `json:"tokenMintOption"`
	TokenMintAddress      string `json:"tokenMintAddress"`
	GasFee                string `json:"gasFee"`
	GasFeeMicro           uint64 `json:"gasFeeMicro"`
	Label                 string `json:"label"`
}

type walletResponse struct {
	PublicKey        string `json:"publicKey"`
	Label            string `json:"label"`
	Network          string `json:"network"`
	TokenMintOption  string `json:"tokenMintOption"`
	TokenMintAddress string `json:"tokenMintAddress"`
	GasFee           uint64 `json:"gasFee"`
}

type stateResponse struct {
	Config        configResponse   `json:"config"`
	PublicKey     string           `json:"publicKey"`
	ActiveWallets []walletResponse `json:"activeWallets"`
	PendingStarts int              `json:"pendingStarts"`
	Stopping      []string         `json:"stopping"`
}

type derivationResponse struct {
	PublicKey string `json:"publicKey,omitempty"`
	Applied   bool   `json:"applied"`
	Error     string `json:"error,omitempty"`
}

type updateConfigResponse struct {
	State      stateResponse       `json:"state"`
	Derivation *derivationResponse `json:"derivation,omitempty"`
}

type stopResponse struct {
	PublicKey string `json:"publicKey"`
	Removed   bool   `json:"removed"`
}

type transactionResponse struct {
	Signature string  `json:"signature"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	Token     string  `json:"token"`
	Status    string  `json:"status"`
}

type feedResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Sequence     uint64                `json:"sequence"`
	UpdatedAt    *time.Time            `json:"updatedAt,omitempty"`
}

func newStateResponse(snapshot application.SessionSnapshot) stateResponse {
	cfg := snapshot.Config
	wallets := make([]walletResponse, 0, len(snapshot.ActiveWallets))
	for _, wallet := range snapshot.ActiveWallets {
		wallets = append(wallets, newWalletResponse(wallet))
	}
	stopping := snapshot.Stopping
	if stopping == nil {
		stopping = []string{}
	}

	return stateResponse{
		Config: configResponse{
			SeedWords:             len(cfg.Seed),
			SecureWalletPublicKey: cfg.SecureWalletPublicKey,
			Network:               string(cfg.Network),
			TokenMintOption:       string(cfg.TokenMintOption),
			TokenMintAddress:      cfg.TokenMintAddress,
			GasFee:                string(cfg.GasFeeTier),
			GasFeeMicro:           cfg.GasFee(),
			Label:                 cfg.Label,
		},
		PublicKey:     snapshot.PublicKey,
		ActiveWallets: wallets,
		PendingStarts: snapshot.PendingStarts,
		Stopping:      stopping,
	}
}

func newWalletResponse(wallet domain.ActiveWallet) walletResponse {
	return walletResponse{
		PublicKey:        wallet.PublicKey,
		Label:            wallet.Label,
		Network:          string(wallet.Network),
		TokenMintOption:  string(wallet.TokenMintOption),
		TokenMintAddress: wallet.TokenMintAddress,
		GasFee:           wallet.GasFee,
	}
}

func newFeedResponse(snapshot application.FeedSnapshot) feedResponse {
	transactions := make([]transactionResponse, 0, len(snapshot.Transactions))
	for _, tx := range snapshot.Transactions {
		transactions = append(transactions, transactionResponse{
			Signature: tx.Signature,
			From:      tx.From,
			To:        tx.To,
			Amount:    tx.Amount,
			Token:     tx.Token,
			Status:    string(tx.Status),
		})
	}

	response := feedResponse{Transactions: transactions, Sequence: snapshot.Sequence}
	if !snapshot.UpdatedAt.IsZero() {
		updatedAt := snapshot.UpdatedAt
		response.UpdatedAt = &updatedAt
	}
	return response
}
