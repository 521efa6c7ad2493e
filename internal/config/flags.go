package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/cardkeeper/internal/flagx"
)

// parseFlags populates Config from the command line. Only the flags listed
// in the package documentation are considered; everything else in os.Args
// is filtered out with flagx.FilterArgs. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-k", "-r", "-z", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the SQLite database file")
	fs.StringVar(&cfg.StoreBackend, "b", cfg.StoreBackend, "store backend: sqlite, memory or redis")
	fs.StringVar(&cfg.StoreKey, "k", cfg.StoreKey, "store key holding the card list")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.ExpiryTZ, "z", cfg.ExpiryTZ, "time zone for expiry checks (empty = local)")
	persistTimeout := fs.Int("t", int(cfg.PersistTimeout.Seconds()), "persist timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -t replaces the timeout, so sub-second values from
	// earlier sources survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.PersistTimeout = time.Duration(*persistTimeout) * time.Second
		}
	})
}
