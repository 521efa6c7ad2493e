package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cardkeeper/internal/flagx"
	"github.com/dmitrijs2005/cardkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty" so a partial file only overrides
// the keys it names.
type JsonConfig struct {
	DatabasePath   *string         `json:"database_path"`
	StoreBackend   *string         `json:"store_backend"`
	StoreKey       *string         `json:"store_key"`
	RedisAddr      *string         `json:"redis_addr"`
	Passphrase     *string         `json:"passphrase"`
	ExpiryTZ       *string         `json:"expiry_tz"`
	PersistTimeout *timex.Duration `json:"persist_timeout"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read or unmarshal
// errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set := func(src *string, dst *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(jc.DatabasePath, &cfg.DatabasePath)
	set(jc.StoreBackend, &cfg.StoreBackend)
	set(jc.StoreKey, &cfg.StoreKey)
	set(jc.RedisAddr, &cfg.RedisAddr)
	set(jc.Passphrase, &cfg.Passphrase)
	set(jc.ExpiryTZ, &cfg.ExpiryTZ)
	set(jc.LogLevel, &cfg.LogLevel)
	if jc.PersistTimeout != nil {
		cfg.PersistTimeout = jc.PersistTimeout.Duration
	}
}
