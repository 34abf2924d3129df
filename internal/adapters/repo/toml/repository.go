package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/bnema/solana-autotransfer-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	statePathKey    = "state.path"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	stateConfigDir  = ".sat"
	stateConfigFile = "state.toml"
	tempFilePattern = ".state-*.toml.tmp"
)

// StateRepository keeps the persisted record in a single TOML file. Writes
// go through a temp file and a rename so readers never see a partial record.
type StateRepository struct {
	statePath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.StateStore = (*StateRepository)(nil)

func NewStateRepository(cfg *viper.Viper) (*StateRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(statePathKey, filepath.Join(homeDir, stateConfigDir, stateConfigFile))

	statePath := cfg.GetString(statePathKey)
	if statePath == "" {
		return nil, errors.New("state path is empty")
	}
	statePath, err = normalizeStatePath(statePath)
	if err != nil {
		return nil, err
	}

	return &StateRepository{statePath: statePath, mu: lockForPath(statePath)}, nil
}

func (r *StateRepository) Path() string {
	return r.statePath
}

func (r *StateRepository) Load(ctx context.Context) (domain.PersistedState, error) {
	if err := ctx.Err(); err != nil {
		return domain.PersistedState{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.statePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.PersistedState{}, domain.ErrStateNotFound
		}
		return domain.PersistedState{}, fmt.Errorf("read state file: %w", err)
	}

	var file stateSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.PersistedState{}, fmt.Errorf("%w: decode state file: %w", domain.ErrMalformedState, err)
	}

	return fromSchema(file), nil
}

func (r *StateRepository) Save(ctx context.Context, state domain.PersistedState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(state))
}

func normalizeStatePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *StateRepository) writeSchema(file stateSchema) error {
	if err := os.MkdirAll(filepath.Dir(r.statePath), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.statePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	// The record holds the seed in clear text.
	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, r.statePath); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(state domain.PersistedState) stateSchema {
	cfg := state.Config
	wallets := make([]walletSchema, 0, len(state.ActiveWallets))
	for _, wallet := range state.ActiveWallets {
		wallets = append(wallets, walletSchema{
			PublicKey:        wallet.PublicKey,
			Label:            wallet.Label,
			Network:          string(wallet.Network),
			TokenMintOption:  string(wallet.TokenMintOption),
			TokenMintAddress: wallet.TokenMintAddress,
			GasFee:           wallet.GasFee,
		})
	}

	return stateSchema{
		Seed:                  append([]string{}, cfg.Seed...),
		SecureWalletPublicKey: cfg.SecureWalletPublicKey,
		Network:               string(cfg.Network),
		TokenMintOption:       string(cfg.TokenMintOption),
		TokenMintAddress:      cfg.TokenMintAddress,
		GasFee:                cfg.GasFee(),
		Label:                 cfg.Label,
		ActiveWallets:         wallets,
	}
}

func fromSchema(file stateSchema) domain.PersistedState {
	cfg := domain.SessionConfig{
		Seed:                  domain.ParseSeed(strings.Join(file.Seed, " ")),
		SecureWalletPublicKey: file.SecureWalletPublicKey,
		Network:               domain.DecodeNetwork(file.Network),
		TokenMintOption:       domain.DecodeTokenMintOption(file.TokenMintOption),
		TokenMintAddress:      file.TokenMintAddress,
		Label:                 file.Label,
	}
	if file.GasFee != 0 {
		cfg.GasFeeTier = domain.GasFeeTierForMicroFee(file.GasFee)
	}

	wallets := make(domain.Registry, 0, len(file.ActiveWallets))
	for _, entry := range file.ActiveWallets {
		wallets = append(wallets, domain.ActiveWallet{
			PublicKey:        entry.PublicKey,
			Label:            entry.Label,
			Network:          domain.DecodeNetwork(entry.Network),
			TokenMintOption:  domain.DecodeTokenMintOption(entry.TokenMintOption),
			TokenMintAddress: entry.TokenMintAddress,
			GasFee:           entry.GasFee,
		})
	}

	return domain.PersistedState{Config: cfg, ActiveWallets: wallets}
}
