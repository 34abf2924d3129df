package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/solana-autotransfer-cli/internal/domain"
	"github.com/bnema/solana-autotransfer-cli/internal/ports"
	"github.com/spf13/viper"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	sqlitePathKey  = "state.sqlite_path"
	stateDirMode   = 0o700
	stateConfigDir = ".sat"
	stateDBFile    = "state.db"
)

// StateRepository keeps the persisted record in SQLite: one config row and
// an ordered wallet table, replaced together in a single transaction.
type StateRepository struct {
	db   *gorm.DB
	path string
}

var _ ports.StateStore = (*StateRepository)(nil)

func NewStateRepository(cfg *viper.Viper) (*StateRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(sqlitePathKey, filepath.Join(homeDir, stateConfigDir, stateDBFile))

	dbPath := cfg.GetString(sqlitePathKey)
	if dbPath == "" {
		return nil, errors.New("sqlite state path is empty")
	}

	return Open(dbPath)
}

func Open(dbPath string) (*StateRepository, error) {
	absPath, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite state path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	if err := os.MkdirAll(filepath.Dir(absPath), stateDirMode); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	db, err := gorm.Open(gormsqlite.Open(absPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite state: %w", err)
	}

	if err := db.AutoMigrate(&configRow{}, &walletRow{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite state: %w", err)
	}

	return &StateRepository{db: db, path: absPath}, nil
}

func (r *StateRepository) Path() string {
	return r.path
}

func (r *StateRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *StateRepository) Load(ctx context.Context) (domain.PersistedState, error) {
	db := r.db.WithContext(ctx)

	var row configRow
	if err := db.First(&row, configRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PersistedState{}, domain.ErrStateNotFound
		}
		return domain.PersistedState{}, fmt.Errorf("load session config: %w", err)
	}

	var rows []walletRow
	if err := db.Order("position").Find(&rows).Error; err != nil {
		return domain.PersistedState{}, fmt.Errorf("load active wallets: %w", err)
	}

	return fromRows(row, rows), nil
}

func (r *StateRepository) Save(ctx context.Context, state domain.PersistedState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row, wallets := toRows(state)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&row).Error; err != nil {
			return fmt.Errorf("save session config: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&walletRow{}).Error; err != nil {
			return fmt.Errorf("clear active wallets: %w", err)
		}
		if len(wallets) == 0 {
			return nil
		}
		if err := tx.Create(&wallets).Error; err != nil {
			return fmt.Errorf("save active wallets: %w", err)
		}
		return nil
	})
}

func toRows(state domain.PersistedState) (configRow, []walletRow) {
	cfg := state.Config
	row := configRow{
		ID:               configRowID,
		Seed:             cfg.Seed.String(),
		SecureWallet:     cfg.SecureWalletPublicKey,
		Network:          string(cfg.Network),
		TokenMintOption:  string(cfg.TokenMintOption),
		TokenMintAddress: cfg.TokenMintAddress,
		GasFee:           cfg.GasFee(),
		Label:            cfg.Label,
	}

	wallets := make([]walletRow, 0, len(state.ActiveWallets))
	for i, wallet := range state.ActiveWallets {
		wallets = append(wallets, walletRow{
			Position:         i,
			PublicKey:        wallet.PublicKey,
			Label:            wallet.Label,
			Network:          string(wallet.Network),
			TokenMintOption:  string(wallet.TokenMintOption),
			TokenMintAddress: wallet.TokenMintAddress,
			GasFee:           wallet.GasFee,
		})
	}

	return row, wallets
}

func fromRows(row configRow, rows []walletRow) domain.PersistedState {
	cfg := domain.SessionConfig{
		Seed:                  domain.ParseSeed(row.Seed),
		SecureWalletPublicKey: row.SecureWallet,
		Network:               domain.DecodeNetwork(row.Network),
		TokenMintOption:       domain.DecodeTokenMintOption(row.TokenMintOption),
		TokenMintAddress:      row.TokenMintAddress,
		Label:                 row.Label,
	}
	if row.GasFee != 0 {
		cfg.GasFeeTier = domain.GasFeeTierForMicroFee(row.GasFee)
	}

	wallets := make(domain.Registry, 0, len(rows))
	for _, entry := range rows {
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
