package toml

// stateSchema is the on-disk layout of the single persisted record. The form
// fields sit at the top level and each active wallet is an array table.
type stateSchema struct {
	Seed                  []string       `toml:"seed"`
	SecureWalletPublicKey string         `toml:"secure_wallet"`
	Network               string         `toml:"network"`
	TokenMintOption       string         `toml:"token_mint_option"`
	TokenMintAddress      string         `toml:"token_mint_address"`
	GasFee                uint64         `toml:"gas_fee"`
	Label                 string         `toml:"label"`
	ActiveWallets         []walletSchema `toml:"active_wallets"`
}

type walletSchema struct {
	PublicKey        string `toml:"public_key"`
	Label            string `toml:"label"`
	Network          string `toml:"network"`
	TokenMintOption  string `toml:"token_mint_option"`
	TokenMintAddress string `toml:"token_mint_address"`
	GasFee           uint64 `toml:"gas_fee"`
}
