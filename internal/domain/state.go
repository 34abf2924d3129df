package domain

// PersistedState is the single durable record: every SessionConfig field
// except the derived public key, plus the active wallet registry.
type PersistedState struct {
	Config        SessionConfig
	ActiveWallets Registry
}

func (s PersistedState) Clone() PersistedState {
	cfg := s.Config
	cfg.Seed = s.Config.Seed.Clone()
	return PersistedState{Config: cfg, ActiveWallets: s.ActiveWallets.Clone()}
}
