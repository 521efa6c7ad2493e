package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "cards.db", c.DatabasePath)
	assert.Equal(t, "sqlite", c.StoreBackend)
	assert.Equal(t, "cards_v1", c.StoreKey)
	assert.Equal(t, 3*time.Second, c.PersistTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.Passphrase)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	withDotenv(t, nil)

	t.Setenv("CARDKEEPER_STORE_KEY", "env_key")
	t.Setenv("CARDKEEPER_LOG_LEVEL", "debug")
	t.Setenv("CARDKEEPER_DATABASE_PATH", "env.db")

	path := writeTempJSON(t, t.TempDir(), "cfg.json", map[string]any{
		"log_level":     "warn",
		"database_path": "json.db",
	})
	os.Args = []string{"cardkeeper", "-c", path, "-d", "flag.db"}

	cfg := LoadConfig()

	assert.Equal(t, "env_key", cfg.StoreKey, "env overrides default")
	assert.Equal(t, "warn", cfg.LogLevel, "json overrides env")
	assert.Equal(t, "flag.db", cfg.DatabasePath, "flags override json")
	assert.Equal(t, 3*time.Second, cfg.PersistTimeout)
}

func TestConfig_Location(t *testing.T) {
	c := Config{}
	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	c.ExpiryTZ = "UTC"
	loc, err = c.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	c.ExpiryTZ = "Mars/Olympus_Mons"
	_, err = c.Location()
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown backend", func(c *Config) { c.StoreBackend = "etcd" }, `unknown store backend "etcd"`},
		{"sqlite without path", func(c *Config) { c.DatabasePath = "" }, "database path is required"},
		{"redis without addr", func(c *Config) { c.StoreBackend = "redis"; c.RedisAddr = "" }, "redis address is required"},
		{"empty key", func(c *Config) { c.StoreKey = " " }, "store key must not be empty"},
		{"zero timeout", func(c *Config) { c.PersistTimeout = 0 }, "persist timeout"},
		{"bad tz", func(c *Config) { c.ExpiryTZ = "Nowhere/Else" }, "invalid expiry time zone"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("reports all problems", func(t *testing.T) {
		c := valid()
		c.StoreKey = ""
		c.PersistTimeout = -1
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store key")
		assert.Contains(t, err.Error(), "persist timeout")
	})

	t.Run("memory backend needs nothing else", func(t *testing.T) {
		c := valid()
		c.StoreBackend = "memory"
		c.DatabasePath = ""
		assert.NoError(t, c.Validate())
	})
}
