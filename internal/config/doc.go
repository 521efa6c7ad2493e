// Package config loads runtime configuration for the cardkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file in the
//     working directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via -c or -config.
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-b string   store backend: sqlite, memory or redis
//	-k string   store key holding the card list
//	-r string   redis address (host:port)
//	-z string   IANA time zone used for expiry checks (empty = local)
//	-t int      persist timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds. Keys that are absent leave the earlier value untouched:
//
//	{
//	  "database_path": "cards.db",
//	  "store_backend": "sqlite",
//	  "store_key": "cards_v1",
//	  "redis_addr": "127.0.0.1:6379",
//	  "passphrase": "",
//	  "expiry_tz": "Europe/Riga",
//	  "persist_timeout": "3s",
//	  "log_level": "info"
//	}
//
// The passphrase has no flag so it does not end up in shell history; set it
// through CARDKEEPER_PASSPHRASE or the JSON file.
package config
