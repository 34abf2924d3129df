package application

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/bnema/solana-autotransfer-cli/internal/ports"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil })
}

func mockAnything() interface{} {
	return mock.Anything
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// memoryStateStore records every save so tests can assert write-through.
type memoryStateStore struct {
	mu      sync.Mutex
	state   *domain.PersistedState
	saves   int
	saveErr error
}

func (s *memoryStateStore) Load(_ context.Context) (domain.PersistedState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return domain.PersistedState{}, domain.ErrStateNotFound
	}
	return s.state.Clone(), nil
}

func (s *memoryStateStore) Save(_ context.Context, state domain.PersistedState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	cloned := state.Clone()
	s.state = &cloned
	return nil
}

func (s *memoryStateStore) saved() (domain.PersistedState, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return domain.PersistedState{}, s.saves
	}
	return s.state.Clone(), s.saves
}

// fakeMonitor lets tests script each remote operation.
type fakeMonitor struct {
	derive func(ctx context.Context, seed domain.Seed) (string, error)
	start  func(ctx context.Context, req ports.StartMonitoringRequest) (string, error)
	stop   func(ctx context.Context, publicKey string) error
	list   func(ctx context.Context) ([]domain.TransactionRecord, error)
}

func (f *fakeMonitor) DerivePublicKey(ctx context.Context, seed domain.Seed) (string, error) {
	return f.derive(ctx, seed)
}

func (f *fakeMonitor) StartMonitoring(ctx context.Context, req ports.StartMonitoringRequest) (string, error) {
	return f.start(ctx, req)
}

func (f *fakeMonitor) StopMonitoring(ctx context.Context, publicKey string) error {
	return f.stop(ctx, publicKey)
}

func (f *fakeMonitor) ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error) {
	return f.list(ctx)
}

func ptr[T any](v T) *T {
	return &v
}
