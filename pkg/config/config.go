package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	User    string        `mapstructure:"user"`
	Session string        `mapstructure:"session"`
	Search  bool          `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the assistant endpoint configuration
type ServerConfig struct {
	URL              string        `mapstructure:"url"`
	HandshakeTimeout time.Duration `mapstructure:"handshake_timeout"`
	PingInterval     time.Duration `mapstructure:"ping_interval"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	Preserve bool   `mapstructure:"preserve"`
	Level    string `mapstructure:"level"`
}

var (
	global *Config
	mu     sync.RWMutex
)

// Load unmarshals the viper-managed settings into the global Config. A
// session identifier is minted per process when the settings do not pin one.
func Load() error {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Session == "" {
		cfg.Session = uuid.NewString()
	}
	if cfg.Server.HandshakeTimeout <= 0 {
		cfg.Server.HandshakeTimeout = 10 * time.Second
	}
	if cfg.Server.PingInterval <= 0 {
		cfg.Server.PingInterval = 30 * time.Second
	}

	mu.Lock()
	global = cfg
	mu.Unlock()
	return nil
}

// Get returns the loaded configuration, loading it on first use.
func Get() *Config {
	mu.RLock()
	cfg := global
	mu.RUnlock()

	if cfg == nil {
		if err := Load(); err != nil {
			return &Config{}
		}
		mu.RLock()
		cfg = global
		mu.RUnlock()
	}
	return cfg
}

// Set replaces the global configuration (used by tests).
func Set(cfg *Config) {
	mu.Lock()
	global = cfg
	mu.Unlock()
}
