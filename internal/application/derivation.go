package application

import (
	"context"
	"fmt"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
)

// RefreshPublicKey derives the public key for the current seed.
func (s *SessionService) RefreshPublicKey(ctx context.Context) (DerivationResult, error) {
	s.mu.Lock()
	seed := s.state.Config.Seed.Clone()
	s.mu.Unlock()

	if seed.IsEmpty() {
		return DerivationResult{}, domain.ErrEmptySeed
	}

	return s.derive(ctx, seed)
}

// DeriveRestoredKey derives the key for a restored seed in the background, for
// views that stay up long enough to show it. It does nothing when the seed is
// empty or a key is already known. The returned channel closes once the
// derivation has settled; failures and superseded results are only logged.
func (s *SessionService) DeriveRestoredKey(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()
	seed := s.state.Config.Seed.Clone()
	known := s.publicKey != ""
	s.mu.Unlock()

	if seed.IsEmpty() || known {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		if _, err := s.derive(ctx, seed); err != nil {
			s.logger.Debug("restored seed derivation not applied", "error", err)
		}
	}()

	return done
}

// derive asks the remote service for the key of seed. The response is tagged
// with the seed it was issued for and only applied while that seed is still
// the live one; a superseded response is dropped with ErrStaleDerivation.
func (s *SessionService) derive(ctx context.Context, seed domain.Seed) (DerivationResult, error) {
	logger := s.logger.With("op", "derive", "seed_words", len(seed))
	if !seed.IsMnemonic() {
		logger.Debug("seed is not a valid bip39 mnemonic, forwarding as entered")
	}

	publicKey, err := s.remote.DerivePublicKey(detach(ctx), seed)
	if err != nil {
		logger.Warn("derive public key failed, keeping previous key", "error", err)
		return DerivationResult{Seed: seed}, fmt.Errorf("%w: derive public key: %w", domain.ErrRemote, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Config.Seed.Equal(seed) {
		logger.Debug("discarding derivation for superseded seed")
		return DerivationResult{Seed: seed, PublicKey: publicKey}, domain.ErrStaleDerivation
	}

	s.publicKey = publicKey
	logger.Debug("applied derived public key", "public_key", publicKey)
	return DerivationResult{Seed: seed, PublicKey: publicKey, Applied: true}, nil
}
