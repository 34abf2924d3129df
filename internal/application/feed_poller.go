package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/bnema/solana-autotransfer-cli/internal/ports"
)

const DefaultFeedInterval = 5 * time.Second

// FeedPoller keeps the displayed transaction log. Every successful tick
// replaces the log wholesale. Ticks are numbered when issued and a response
// is only applied if no later tick has been applied yet, so a slow response
// can never overwrite a newer one.
type FeedPoller struct {
	remote   ports.MonitorService
	interval time.Duration
	clock    ports.Clock
	logger   *slog.Logger

	mu           sync.Mutex
	issued       uint64
	applied      uint64
	transactions []domain.TransactionRecord
	updatedAt    time.Time
	subscribers  map[int]chan FeedSnapshot
	nextSubID    int
}

func NewFeedPoller(remote ports.MonitorService, interval time.Duration, clock ports.Clock, logger *slog.Logger) *FeedPoller {
	if interval <= 0 {
		interval = DefaultFeedInterval
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FeedPoller{
		remote:       remote,
		interval:     interval,
		clock:        clock,
		logger:       logger.With("component", "feed"),
		transactions: []domain.TransactionRecord{},
		subscribers:  map[int]chan FeedSnapshot{},
	}
}

func (p *FeedPoller) Interval() time.Duration {
	return p.interval
}

// Tick performs one fetch. On failure the current log is kept. A response
// overtaken by a newer tick returns ErrStaleFeed and is not applied.
func (p *FeedPoller) Tick(ctx context.Context) ([]domain.TransactionRecord, error) {
	p.mu.Lock()
	p.issued++
	seq := p.issued
	p.mu.Unlock()

	logger := p.logger.With("op", "tick", "seq", seq)

	transactions, err := p.remote.ListTransactions(ctx)
	if err != nil {
		logger.Warn("fetch transactions failed, keeping previous log", "error", err)
		return nil, fmt.Errorf("%w: list transactions: %w", domain.ErrRemote, err)
	}

	snapshot := FeedSnapshot{
		Transactions: append([]domain.TransactionRecord{}, transactions...),
		Sequence:     seq,
		UpdatedAt:    p.clock.Now(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq <= p.applied {
		logger.Debug("discarding feed response overtaken by a newer tick", "applied", p.applied)
		return snapshot.Transactions, domain.ErrStaleFeed
	}

	p.applied = seq
	p.transactions = snapshot.Transactions
	p.updatedAt = snapshot.UpdatedAt
	p.publishLocked(snapshot)

	logger.Debug("feed replaced", "transactions", len(snapshot.Transactions))
	return snapshot.Transactions, nil
}

func (p *FeedPoller) Snapshot() FeedSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return FeedSnapshot{
		Transactions: append([]domain.TransactionRecord{}, p.transactions...),
		Sequence:     p.applied,
		UpdatedAt:    p.updatedAt,
	}
}

// Subscribe returns a channel that receives the latest snapshot after every
// replacement. Slow readers only ever see the newest snapshot.
func (p *FeedPoller) Subscribe() (<-chan FeedSnapshot, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSubID
	p.nextSubID++
	ch := make(chan FeedSnapshot, 1)
	p.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subscribers, id)
			close(ch)
		})
	}
}

func (p *FeedPoller) publishLocked(snapshot FeedSnapshot) {
	for _, ch := range p.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

// Start schedules a tick immediately and then every interval until ctx is
// done or the returned handle is stopped. Each tick is bounded by the
// interval, so at most two fetches are ever in flight.
func (p *FeedPoller) Start(ctx context.Context) *PollHandle {
	ctx, cancel := context.WithCancel(ctx)
	handle := &PollHandle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(handle.done)

		var inflight sync.WaitGroup
		defer inflight.Wait()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.logger.Debug("feed poller started", "interval", p.interval)
		run := func() {
			inflight.Add(1)
			go func() {
				defer inflight.Done()
				tickCtx, cancelTick := context.WithTimeout(ctx, p.interval)
				defer cancelTick()
				_, _ = p.Tick(tickCtx)
			}()
		}

		run()
		for {
			select {
			case <-ctx.Done():
				p.logger.Debug("feed poller stopped", "reason", ctx.Err())
				return
			case <-ticker.C:
				run()
			}
		}
	}()

	return handle
}

// PollHandle revokes a running poll schedule.
type PollHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the schedule and waits for in-flight ticks to return.
func (h *PollHandle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

func (h *PollHandle) Done() <-chan struct{} {
	return h.done
}
