package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/cardkeeper/internal/cards"
	"github.com/dmitrijs2005/cardkeeper/internal/config"
	"github.com/dmitrijs2005/cardkeeper/internal/kvstore"
	"github.com/dmitrijs2005/cardkeeper/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Run wires cfg into a store, a provider and the REPL, and blocks until the
// session ends. Logs go to errOut as JSON.
func Run(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	logger := logging.NewJSON(errOut, level)

	store, closeStore, err := kvstore.New(ctx, kvstore.Options{
		Backend:      cfg.StoreBackend,
		DatabasePath: cfg.DatabasePath,
		RedisAddr:    cfg.RedisAddr,
		Passphrase:   cfg.Passphrase,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn(context.Background(), "close store failed", "err", err)
		}
	}()

	provider := cards.NewProvider(store,
		cards.WithStoreKey(cfg.StoreKey),
		cards.WithLogger(logger),
		cards.WithLocation(loc),
		cards.WithPersistTimeout(cfg.PersistTimeout),
	)
	provider.Load(ctx)

	app := NewApp(provider, in, out, logger)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)

	g.Go(func() error {
		return provider.Run(runCtx)
	})
	g.Go(func() error {
		defer stop()
		if err := app.Run(runCtx); err != nil {
			return err
		}
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.PersistTimeout+time.Second)
		defer cancel()
		return provider.Flush(flushCtx)
	})

	return g.Wait()
}
