package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config is the complete simulator configuration.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	Store   StoreConfig   `json:"store" yaml:"store"`
}

// AccountConfig seeds new sessions.
type AccountConfig struct {
	StartingBalance decimal.Decimal `json:"starting_balance" yaml:"starting_balance" envconfig:"STARTING_BALANCE"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	LogLevel string `json:"log_level" yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// StoreConfig selects the snapshot store.
type StoreConfig struct {
	Type string `json:"type" yaml:"type"` // "sqlite", "json" or "none"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON; YAML is tried
// first).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads the optional config file, then overlays MARKETSIM_* environment
// variables such as MARKETSIM_SERVER_ADDR or
// MARKETSIM_ACCOUNT_STARTING_BALANCE (a .env file is honored when present).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	_ = godotenv.Load()
	if err := envconfig.Process("marketsim", cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML or JSON by file extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if !c.Account.StartingBalance.IsPositive() {
		return fmt.Errorf("account.starting_balance must be positive")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	switch c.Store.Type {
	case "sqlite", "json":
		if c.Store.Path == "" {
			return fmt.Errorf("store.path required for %s store", c.Store.Type)
		}
	case "none":
	default:
		return fmt.Errorf("store.type must be 'sqlite', 'json' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			StartingBalance: decimal.NewFromInt(1_000_000),
		},
		Server: ServerConfig{
			Addr:     ":8080",
			LogLevel: "info",
		},
		Store: StoreConfig{
			Type: "sqlite",
			Path: "./marketsim.db",
		},
	}
}
