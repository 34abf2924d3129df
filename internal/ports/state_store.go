package ports

import (
	"context"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
)

// StateStore owns the single durable session record. Load returns
// domain.ErrStateNotFound when no record exists and wraps
// domain.ErrMalformedState when the record cannot be decoded.
type StateStore interface {
	Load(ctx context.Context) (domain.PersistedState, error)
	Save(ctx context.Context, state domain.PersistedState) error
}
