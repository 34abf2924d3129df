package sqlite

import "time"

const configRowID = 1

// configRow holds the form fields. There is only ever one row.
type configRow struct {
	ID               uint `gorm:"primaryKey"`
	Seed             string
	SecureWallet     string
	Network          string
	TokenMintOption  string
	TokenMintAddress string
	GasFee           uint64
	Label            string
	UpdatedAt        time.Time
}

func (configRow) TableName() string {
	return "session_config"
}

type walletRow struct {
	ID               uint   `gorm:"primaryKey"`
	Position         int    `gorm:"index"`
	PublicKey        string `gorm:"uniqueIndex"`
	Label            string
	Network          string
	TokenMintOption  string
	TokenMintAddress string
	GasFee           uint64
}

func (walletRow) TableName() string {
	return "active_wallets"
}
