package application

import (
	"time"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
)

// SessionSnapshot is what the presentation layer renders. PublicKey is empty
// when no key has been derived for the current seed.
type SessionSnapshot struct {
	Config        domain.SessionConfig
	PublicKey     string
	ActiveWallets domain.Registry
	PendingStarts int
	Stopping      []string
}

type FeedSnapshot struct {
	Transactions []domain.TransactionRecord
	Sequence     uint64
	UpdatedAt    time.Time
}

type StopResult struct {
	PublicKey string
	Removed   bool
}

type DerivationResult struct {
	Seed      domain.Seed
	PublicKey string
	Applied   bool
}
