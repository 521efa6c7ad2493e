package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cardkeeper/internal/kvstore"
	"github.com/dmitrijs2005/cardkeeper/internal/logging"
)

// Config holds runtime settings for the cardkeeper CLI.
type Config struct {
	DatabasePath   string
	StoreBackend   string
	StoreKey       string
	RedisAddr      string
	Passphrase     string
	ExpiryTZ       string
	PersistTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "cards.db"
	c.StoreBackend = kvstore.BackendSQLite
	c.StoreKey = "cards_v1"
	c.RedisAddr = "127.0.0.1:6379"
	c.Passphrase = ""
	c.ExpiryTZ = ""
	c.PersistTimeout = 3 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from defaults, the environment, an optional
// JSON file and command-line flags, in that order of increasing precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Location resolves ExpiryTZ. An empty value means time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.ExpiryTZ == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.ExpiryTZ)
	if err != nil {
		return nil, fmt.Errorf("invalid expiry time zone %q: %w", c.ExpiryTZ, err)
	}
	return loc, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.StoreBackend {
	case kvstore.BackendSQLite:
		if c.DatabasePath == "" {
			problems = append(problems, "database path is required for the sqlite backend")
		}
	case kvstore.BackendMemory:
	case kvstore.BackendRedis:
		if c.RedisAddr == "" {
			problems = append(problems, "redis address is required for the redis backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown store backend %q", c.StoreBackend))
	}

	if strings.TrimSpace(c.StoreKey) == "" {
		problems = append(problems, "store key must not be empty")
	}
	if c.PersistTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("persist timeout %v must be positive", c.PersistTimeout))
	}
	if _, err := c.Location(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
