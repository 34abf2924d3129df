package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bnema/solana-autotransfer-cli/internal/adapters/remote"
	"github.com/bnema/solana-autotransfer-cli/internal/adapters/render/dashboard"
	sqliterepo "github.com/bnema/solana-autotransfer-cli/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/solana-autotransfer-cli/internal/adapters/repo/toml"
	"github.com/bnema/solana-autotransfer-cli/internal/application"
	"github.com/bnema/solana-autotransfer-cli/internal/config"
	"github.com/bnema/solana-autotransfer-cli/internal/observability"
	"github.com/bnema/solana-autotransfer-cli/internal/ports"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type app struct {
	config   config.Config
	logger   *slog.Logger
	session  *application.SessionService
	feed     *application.FeedPoller
	renderer func(dashboard.RenderInput, dashboard.RenderOptions) (string, error)
	now      func() time.Time
	closers  []func() error
}

func wireApp() (*app, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	v, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	logger := observability.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	store, closeStore, err := newStateStore(cfg, v)
	if err != nil {
		return nil, err
	}

	client := remote.MonitorClient{
		API: remote.API{
			BaseURL:     cfg.Remote.BaseURL,
			StopBaseURL: cfg.Remote.StopBaseURL,
		},
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.Remote.Timeout,
	}

	session := application.NewSessionService(client, store, logger)
	session.Restore(context.Background())

	a := &app{
		config:   cfg,
		logger:   logger,
		session:  session,
		feed:     application.NewFeedPoller(client, cfg.Feed.Interval, ports.SystemClock{}, logger),
		renderer: dashboard.Render,
		now:      time.Now,
	}
	if closeStore != nil {
		a.closers = append(a.closers, closeStore)
	}

	return a, nil
}

func newStateStore(cfg config.Config, v *viper.Viper) (ports.StateStore, func() error, error) {
	switch cfg.State.Backend {
	case config.BackendSQLite:
		repo, err := sqliterepo.NewStateRepository(v)
		if err != nil {
			return nil, nil, fmt.Errorf("wire sqlite state store: %w", err)
		}
		return repo, repo.Close, nil
	default:
		repo, err := tomlrepo.NewStateRepository(v)
		if err != nil {
			return nil, nil, fmt.Errorf("wire toml state store: %w", err)
		}
		return repo, nil, nil
	}
}

func (a *app) close() error {
	var errs []error
	for _, closer := range a.closers {
		errs = append(errs, closer())
	}
	a.closers = nil
	return errors.Join(errs...)
}
