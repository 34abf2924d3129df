package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "SAT"
	configDir  = ".sat"
	configName = "config"
	configType = "toml"

	KeyRemoteBaseURL     = "remote.base_url"
	KeyRemoteStopBaseURL = "remote.stop_base_url"
	KeyRemoteTimeout     = "remote.timeout"
	KeyFeedInterval      = "feed.interval"
	KeyStateBackend      = "state.backend"
	KeyStatePath         = "state.path"
	KeyStateSQLitePath   = "state.sqlite_path"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyServeAddr         = "serve.addr"
)

const (
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
)

type Config struct {
	Remote RemoteConfig
	Feed   FeedConfig
	State  StateConfig
	Log    LogConfig
	Serve  ServeConfig
}

type RemoteConfig struct {
	BaseURL     string
	StopBaseURL string
	Timeout     time.Duration
}

type FeedConfig struct {
	Interval time.Duration
}

type StateConfig struct {
	Backend    string
	Path       string
	SQLitePath string
}

type LogConfig struct {
	Level  string
	Format string
}

type ServeConfig struct {
	Addr string
}

// New returns a viper instance with defaults, the optional ~/.sat/config.toml
// file and SAT_ prefixed environment overrides wired in.
func New() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, filepath.Join(homeDir, configDir))

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper, stateDir string) {
	v.SetDefault(KeyRemoteBaseURL, "https://solana-monitoring-app.onrender.com")
	v.SetDefault(KeyRemoteStopBaseURL, "https://sol-transfer-backend.vercel.app")
	v.SetDefault(KeyRemoteTimeout, 30*time.Second)
	v.SetDefault(KeyFeedInterval, 5*time.Second)
	v.SetDefault(KeyStateBackend, BackendTOML)
	v.SetDefault(KeyStatePath, filepath.Join(stateDir, "state.toml"))
	v.SetDefault(KeyStateSQLitePath, filepath.Join(stateDir, "state.db"))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyServeAddr, "127.0.0.1:8787")
}

// Load reads a typed Config out of v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Remote: RemoteConfig{
			BaseURL:     strings.TrimSpace(v.GetString(KeyRemoteBaseURL)),
			StopBaseURL: strings.TrimSpace(v.GetString(KeyRemoteStopBaseURL)),
			Timeout:     v.GetDuration(KeyRemoteTimeout),
		},
		Feed: FeedConfig{
			Interval: v.GetDuration(KeyFeedInterval),
		},
		State: StateConfig{
			Backend:    strings.ToLower(strings.TrimSpace(v.GetString(KeyStateBackend))),
			Path:       v.GetString(KeyStatePath),
			SQLitePath: v.GetString(KeyStateSQLitePath),
		},
		Log: LogConfig{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
		},
		Serve: ServeConfig{
			Addr: v.GetString(KeyServeAddr),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if err := validateBaseURL(KeyRemoteBaseURL, c.Remote.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if c.Remote.StopBaseURL != "" {
		if err := validateBaseURL(KeyRemoteStopBaseURL, c.Remote.StopBaseURL); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Remote.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyRemoteTimeout))
	}
	if c.Feed.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyFeedInterval))
	}

	switch c.State.Backend {
	case BackendTOML:
		if c.State.Path == "" {
			errs = append(errs, fmt.Errorf("%s is required", KeyStatePath))
		}
	case BackendSQLite:
		if c.State.SQLitePath == "" {
			errs = append(errs, fmt.Errorf("%s is required", KeyStateSQLitePath))
		}
	default:
		errs = append(errs, fmt.Errorf("%s must be %q or %q, got %q", KeyStateBackend, BackendTOML, BackendSQLite, c.State.Backend))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%s must be one of debug, info, warn, error; got %q", KeyLogLevel, c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%s must be text or json, got %q", KeyLogFormat, c.Log.Format))
	}

	if c.Serve.Addr == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyServeAddr))
	}

	return errors.Join(errs...)
}

func validateBaseURL(key string, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", key)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", key)
	}
	return nil
}
