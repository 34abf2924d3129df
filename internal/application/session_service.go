package application

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/bnema/solana-autotransfer-cli/internal/ports"
)

// SessionService owns the in-memory session state: the form config, the
// derived public key and the active wallet registry. Every mutation happens
// under mu and is written through to the store; remote calls never run while
// mu is held.
type SessionService struct {
	remote ports.MonitorService
	store  ports.StateStore
	logger *slog.Logger

	mu            sync.Mutex
	state         domain.PersistedState
	publicKey     string
	pendingStarts int
	stopping      map[string]int
}

func NewSessionService(remote ports.MonitorService, store ports.StateStore, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionService{
		remote: remote,
		store:  store,
		logger: logger.With("component", "session"),
		state: domain.PersistedState{
			Config:        domain.DefaultSessionConfig(),
			ActiveWallets: domain.Registry{},
		},
		stopping: map[string]int{},
	}
}

// Restore replaces the in-memory state with the persisted record. A missing
// or unreadable record leaves the defaults in place.
func (s *SessionService) Restore(ctx context.Context) bool {
	state, err := s.store.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStateNotFound):
			s.logger.Debug("no persisted state, using defaults")
		case errors.Is(err, domain.ErrMalformedState):
			s.logger.Warn("persisted state is malformed, using defaults", "error", err)
		default:
			s.logger.Error("load persisted state", "error", err)
		}
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = normalizeState(state)
	s.publicKey = ""
	s.logger.Debug("restored persisted state", "active_wallets", len(s.state.ActiveWallets))
	return true
}

func (s *SessionService) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state.Clone()
	stopping := make([]string, 0, len(s.stopping))
	for publicKey := range s.stopping {
		stopping = append(stopping, publicKey)
	}
	sort.Strings(stopping)

	return SessionSnapshot{
		Config:        state.Config,
		PublicKey:     s.publicKey,
		ActiveWallets: state.ActiveWallets,
		PendingStarts: s.pendingStarts,
		Stopping:      stopping,
	}
}

// UpdateConfig applies cmd to the config and persists it. When the seed
// changes, an empty seed clears the public key and a non-empty one is sent
// for derivation; the derivation outcome is returned alongside the config.
func (s *SessionService) UpdateConfig(ctx context.Context, cmd UpdateConfigCommand) (domain.SessionConfig, *DerivationResult, error) {
	s.mu.Lock()
	previous := s.state.Config
	next := cmd.applyTo(previous)
	seedChanged := !previous.Seed.Equal(next.Seed)
	s.state.Config = next
	if seedChanged && next.Seed.IsEmpty() {
		s.publicKey = ""
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	if !seedChanged || next.Seed.IsEmpty() {
		return next, nil, nil
	}

	result, err := s.derive(ctx, next.Seed)
	return next, &result, err
}

func (s *SessionService) persistLocked(ctx context.Context) {
	if s.store == nil {
		return
	}

	if err := s.store.Save(context.WithoutCancel(ctx), s.state.Clone()); err != nil {
		s.logger.Error("persist session state", "error", err)
	}
}

func normalizeState(state domain.PersistedState) domain.PersistedState {
	state = state.Clone()
	defaults := domain.DefaultSessionConfig()
	if state.Config.Network == "" {
		state.Config.Network = defaults.Network
	}
	if state.Config.TokenMintOption == "" {
		state.Config.TokenMintOption = defaults.TokenMintOption
	}
	if state.Config.GasFeeTier == "" {
		state.Config.GasFeeTier = defaults.GasFeeTier
	}

	registry := domain.Registry{}
	for _, wallet := range state.ActiveWallets {
		if wallet.PublicKey == "" {
			continue
		}
		registry = registry.With(wallet)
	}
	state.ActiveWallets = registry

	return state
}
