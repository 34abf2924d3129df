package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/bnema/solana-autotransfer-cli/internal/ports"
)

var errMissingPublicKey = errors.New("start monitoring response missing public key")

// detach keeps ctx values but drops its cancellation. A start or stop the
// remote may already have accepted must reach the registry even when the
// caller goes away; the client's request timeout still bounds the call.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

// Start registers a monitoring session for cfg. Each successful call adds
// the remote-assigned key to the registry, even when an identical config is
// already active. On failure the registry is left untouched.
func (s *SessionService) Start(ctx context.Context, cfg domain.SessionConfig) (domain.ActiveWallet, error) {
	logger := s.logger.With("op", "start", "label", cfg.Label, "network", cfg.Network)

	s.mu.Lock()
	s.pendingStarts++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.pendingStarts--
		s.mu.Unlock()
	}()

	publicKey, err := s.remote.StartMonitoring(detach(ctx), ports.StartMonitoringRequest{
		Seed:                  cfg.Seed.Clone(),
		SecureWalletPublicKey: cfg.SecureWalletPublicKey,
		Network:               cfg.Network,
		TokenMintAddress:      cfg.EffectiveTokenMintAddress(),
		GasFee:                cfg.GasFee(),
		Label:                 cfg.Label,
	})
	if err == nil && publicKey == "" {
		err = errMissingPublicKey
	}
	if err != nil {
		logger.Warn("start monitoring failed, registry unchanged", "error", err)
		return domain.ActiveWallet{}, fmt.Errorf("%w: start monitoring: %w", domain.ErrRemote, err)
	}

	wallet := domain.NewActiveWallet(publicKey, cfg)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ActiveWallets.Contains(publicKey) {
		logger.Info("remote returned an already active key, replacing entry", "public_key", publicKey)
	}
	s.state.ActiveWallets = s.state.ActiveWallets.With(wallet)
	s.persistLocked(ctx)

	logger.Info("monitoring started", "public_key", publicKey, "active_wallets", len(s.state.ActiveWallets))
	return wallet, nil
}

// Stop ends the monitoring session for publicKey. The remote call is always
// issued since the remote side decides whether the session existed; local
// removal only happens once it acknowledges.
func (s *SessionService) Stop(ctx context.Context, publicKey string) (StopResult, error) {
	logger := s.logger.With("op", "stop", "public_key", publicKey)

	s.mu.Lock()
	s.stopping[publicKey]++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.stopping[publicKey]--
		if s.stopping[publicKey] <= 0 {
			delete(s.stopping, publicKey)
		}
		s.mu.Unlock()
	}()

	if err := s.remote.StopMonitoring(detach(ctx), publicKey); err != nil {
		logger.Warn("stop monitoring failed, registry unchanged", "error", err)
		return StopResult{PublicKey: publicKey}, fmt.Errorf("%w: stop monitoring: %w", domain.ErrRemote, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed := s.state.ActiveWallets.Without(publicKey)
	if !removed {
		logger.Info("stop acknowledged for a key that is not active locally")
		return StopResult{PublicKey: publicKey}, nil
	}

	s.state.ActiveWallets = next
	s.persistLocked(ctx)

	logger.Info("monitoring stopped", "active_wallets", len(next))
	return StopResult{PublicKey: publicKey, Removed: true}, nil
}
