package ports

import (
	"context"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
)

type StartMonitoringRequest struct {
	Seed                  domain.Seed
	SecureWalletPublicKey string
	Network               domain.Network
	TokenMintAddress      string
	GasFee                uint64
	Label                 string
}

// MonitorService is the remote collaborator that derives keys, registers
// monitoring sessions and indexes transactions.
type MonitorService interface {
	DerivePublicKey(ctx context.Context, seed domain.Seed) (string, error)
	StartMonitoring(ctx context.Context, req StartMonitoringRequest) (string, error)
	StopMonitoring(ctx context.Context, publicKey string) error
	ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error)
}
