package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "CARDKEEPER_"

// dotenvFiles are loaded, if present, before the environment is read.
// Variables already set in the process environment win.
var dotenvFiles = []string{".env"}

// parseEnv overlays Config with CARDKEEPER_* variables. A malformed
// CARDKEEPER_PERSIST_TIMEOUT is ignored.
func parseEnv(cfg *Config) {
	for _, f := range dotenvFiles {
		_ = godotenv.Load(f)
	}

	setString := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	setString("DATABASE_PATH", &cfg.DatabasePath)
	setString("STORE_BACKEND", &cfg.StoreBackend)
	setString("STORE_KEY", &cfg.StoreKey)
	setString("REDIS_ADDR", &cfg.RedisAddr)
	setString("PASSPHRASE", &cfg.Passphrase)
	setString("EXPIRY_TZ", &cfg.ExpiryTZ)
	setString("LOG_LEVEL", &cfg.LogLevel)

	if v := os.Getenv(envPrefix + "PERSIST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PersistTimeout = d
		}
	}
}
